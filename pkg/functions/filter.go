package functions

func init() {
	register(filterFunctions)
	register(relationshipFunctions)
}

var filterFunctions = []Signature{
	sig("ALL", FamilyFilter, TypeTable, "Returns all rows in a table or all values in a column, ignoring filters", opt("table_or_column", TypeVariant), opt("column", TypeColumn)),
	sig("ALLCROSSFILTERED", FamilyFilter, TypeTable, "Clears all filters applied to a table through cross-filtering", req("table", TypeTable)),
	sig("ALLEXCEPT", FamilyFilter, TypeTable, "Removes all context filters except those applied to the listed columns", req("table", TypeTable), req("column", TypeColumn), opt("column2", TypeColumn)),
	sig("ALLNOBLANKROW", FamilyFilter, TypeTable, "Returns all rows except the blank row added for invalid relationships", req("table_or_column", TypeVariant)),
	sig("ALLSELECTED", FamilyFilter, TypeTable, "Removes context filters while retaining explicit filters from outside the visual", opt("table_or_column", TypeVariant)),
	sig("CALCULATE", FamilyFilter, TypeVariant, "Evaluates an expression in a modified filter context", req("expression", TypeExpression), opt("filter1", TypeExpression), opt("filter2", TypeExpression)),
	sig("CALCULATETABLE", FamilyFilter, TypeTable, "Evaluates a table expression in a modified filter context", req("expression", TypeTable), opt("filter1", TypeExpression), opt("filter2", TypeExpression)),
	sig("EARLIER", FamilyFilter, TypeVariant, "Returns the value of a column from an earlier row context", req("column", TypeColumn), opt("number", TypeInteger)),
	sig("EARLIEST", FamilyFilter, TypeVariant, "Returns the value of a column from the outermost row context", req("column", TypeColumn)),
	sig("FILTER", FamilyFilter, TypeTable, "Returns the rows of a table that satisfy a condition", req("table", TypeTable), req("filter", TypeExpression)),
	sig("KEEPFILTERS", FamilyFilter, TypeVariant, "Adds filters without replacing existing filters on the same columns", req("expression", TypeExpression)),
	sig("LOOKUPVALUE", FamilyFilter, TypeVariant, "Returns the value of a column for the row that matches the search criteria", req("result_column", TypeColumn), req("search_column", TypeColumn), req("search_value", TypeExpression), opt("alternate_result", TypeExpression)),
	sig("REMOVEFILTERS", FamilyFilter, TypeTable, "Clears filters from the specified tables or columns", opt("table_or_column", TypeVariant), opt("column2", TypeColumn)),
	sig("SELECTEDVALUE", FamilyFilter, TypeVariant, "Returns the value of a column when exactly one value is in filter context", req("column", TypeColumn), opt("alternate_result", TypeExpression)),
}

var relationshipFunctions = []Signature{
	sig("CROSSFILTER", FamilyRelationship, TypeVariant, "Sets the cross-filter direction of a relationship for the duration of a calculation", req("left_column", TypeColumn), req("right_column", TypeColumn), req("direction", TypeText)),
	sig("RELATED", FamilyRelationship, TypeVariant, "Returns a related value from another table following a many-to-one relationship", req("column", TypeColumn)),
	sig("RELATEDTABLE", FamilyRelationship, TypeTable, "Returns the rows of another table related to the current row", req("table", TypeTable)),
	sig("USERELATIONSHIP", FamilyRelationship, TypeBoolean, "Activates an inactive relationship for the duration of a calculation", req("left_column", TypeColumn), req("right_column", TypeColumn)),
}
