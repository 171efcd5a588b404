package functions

func init() { register(tableFunctions) }

var tableFunctions = []Signature{
	sig("ADDCOLUMNS", FamilyTable, TypeTable, "Adds calculated columns to a table expression", req("table", TypeTable), req("name", TypeText), req("expression", TypeExpression), opt("name2", TypeText), opt("expression2", TypeExpression)),
	sig("ADDMISSINGITEMS", FamilyTable, TypeTable, "Adds rows with empty measure values for combinations removed by auto-exist", opt("show_all_column", TypeColumn), req("table", TypeTable), opt("group_by_column", TypeColumn)),
	sig("CROSSJOIN", FamilyTable, TypeTable, "Returns the Cartesian product of the given tables", req("table1", TypeTable), req("table2", TypeTable), opt("table3", TypeTable)),
	sig("CURRENTGROUP", FamilyTable, TypeTable, "Returns the rows of the current group inside a GROUPBY aggregation"),
	sig("DATATABLE", FamilyTable, TypeTable, "Declares an inline table of typed literal values", req("name", TypeText), req("type", TypeText), req("data", TypeExpression)),
	sig("DISTINCT", FamilyTable, TypeTable, "Returns the distinct values of a column or the distinct rows of a table", req("table_or_column", TypeVariant)),
	sig("EXCEPT", FamilyTable, TypeTable, "Returns the rows of one table that do not appear in another", req("left_table", TypeTable), req("right_table", TypeTable)),
	sig("FILTERS", FamilyTable, TypeTable, "Returns the values directly applied as filters to a column", req("column", TypeColumn)),
	sig("GENERATE", FamilyTable, TypeTable, "Joins each row of a table with the table expression evaluated in its row context", req("table1", TypeTable), req("table2", TypeTable)),
	sig("GENERATEALL", FamilyTable, TypeTable, "Like GENERATE, but keeps rows whose second table expression is empty", req("table1", TypeTable), req("table2", TypeTable)),
	sig("GENERATESERIES", FamilyTable, TypeTable, "Returns a single-column table of values from start to end", req("start_value", TypeNumber), req("end_value", TypeNumber), opt("increment_value", TypeNumber)),
	sig("GROUPBY", FamilyTable, TypeTable, "Groups a table by columns and adds aggregations over CURRENTGROUP", req("table", TypeTable), opt("group_by_column", TypeColumn), opt("name", TypeText), opt("expression", TypeExpression)),
	sig("IGNORE", FamilyTable, TypeVariant, "Marks a measure so SUMMARIZECOLUMNS does not use it to remove blank rows", req("expression", TypeExpression)),
	sig("INDEX", FamilyTable, TypeTable, "Returns a row at an absolute position within a partition", req("position", TypeInteger), opt("relation", TypeTable), opt("order_by", TypeExpression), opt("blanks", TypeText), opt("partition_by", TypeExpression)),
	sig("INTERSECT", FamilyTable, TypeTable, "Returns the rows common to two tables", req("left_table", TypeTable), req("right_table", TypeTable)),
	sig("NATURALINNERJOIN", FamilyTable, TypeTable, "Performs an inner join of two tables on their common columns", req("left_table", TypeTable), req("right_table", TypeTable)),
	sig("NATURALLEFTOUTERJOIN", FamilyTable, TypeTable, "Performs a left outer join of two tables on their common columns", req("left_table", TypeTable), req("right_table", TypeTable)),
	sig("OFFSET", FamilyTable, TypeTable, "Returns a row at a relative position within a partition", req("delta", TypeInteger), opt("relation", TypeTable), opt("order_by", TypeExpression), opt("blanks", TypeText), opt("partition_by", TypeExpression)),
	sig("ORDERBY", FamilyTable, TypeVariant, "Declares the sort order for a window function", req("expression", TypeExpression), opt("order", TypeInteger)),
	sig("PARTITIONBY", FamilyTable, TypeVariant, "Declares the partitioning columns for a window function", req("column", TypeColumn), opt("column2", TypeColumn)),
	sig("RANK", FamilyTable, TypeInteger, "Returns the rank of a row within a partition", opt("ties", TypeText), opt("relation", TypeTable), opt("order_by", TypeExpression), opt("blanks", TypeText), opt("partition_by", TypeExpression)),
	sig("ROLLUP", FamilyTable, TypeVariant, "Adds rollup rows to a SUMMARIZE group-by clause", req("column", TypeColumn), opt("column2", TypeColumn)),
	sig("ROLLUPADDISSUBTOTAL", FamilyTable, TypeVariant, "Adds rollup rows with a flag column marking subtotal rows", req("column", TypeColumn), req("name", TypeText), opt("grouping_expression", TypeExpression)),
	sig("ROLLUPGROUP", FamilyTable, TypeVariant, "Groups columns so they roll up together", req("column", TypeColumn), opt("column2", TypeColumn)),
	sig("ROLLUPISSUBTOTAL", FamilyTable, TypeVariant, "Pairs rollup groups with subtotal flag columns for ADDMISSINGITEMS", req("column", TypeColumn), req("is_subtotal", TypeBoolean)),
	sig("ROW", FamilyTable, TypeTable, "Returns a single-row table from name and expression pairs", req("name", TypeText), req("expression", TypeExpression), opt("name2", TypeText), opt("expression2", TypeExpression)),
	sig("SELECTCOLUMNS", FamilyTable, TypeTable, "Returns a table with selected columns, optionally renamed", req("table", TypeTable), req("name", TypeText), req("expression", TypeExpression), opt("name2", TypeText), opt("expression2", TypeExpression)),
	sig("SUBSTITUTEWITHINDEX", FamilyTable, TypeTable, "Replaces semi-join columns with the index of the matching row", req("table", TypeTable), req("name", TypeText), req("semi_join_index_table", TypeTable), req("order_by", TypeExpression), opt("order", TypeInteger)),
	sig("SUMMARIZE", FamilyTable, TypeTable, "Returns a summary table grouped by the requested columns", req("table", TypeTable), req("group_by_column", TypeColumn), opt("name", TypeText), opt("expression", TypeExpression)),
	sig("SUMMARIZECOLUMNS", FamilyTable, TypeTable, "Returns a summary table over a set of groups with optional filters", opt("group_by_column", TypeColumn), opt("filter_table", TypeTable), opt("name", TypeText), opt("expression", TypeExpression)),
	sig("TOPN", FamilyTable, TypeTable, "Returns the top N rows of a table by an ordering expression", req("n_value", TypeInteger), req("table", TypeTable), opt("order_by", TypeExpression), opt("order", TypeInteger)),
	sig("TREATAS", FamilyTable, TypeTable, "Applies the rows of a table expression as filters on unrelated columns", req("table", TypeTable), req("column", TypeColumn), opt("column2", TypeColumn)),
	sig("UNION", FamilyTable, TypeTable, "Returns the union of two or more tables", req("table1", TypeTable), req("table2", TypeTable), opt("table3", TypeTable)),
	sig("VALUES", FamilyTable, TypeTable, "Returns the distinct values of a column, including the blank row", req("table_or_column", TypeVariant)),
	sig("WINDOW", FamilyTable, TypeTable, "Returns a range of rows within a partition by absolute or relative position", req("from", TypeInteger), req("from_type", TypeText), req("to", TypeInteger), req("to_type", TypeText), opt("relation", TypeTable), opt("order_by", TypeExpression), opt("blanks", TypeText), opt("partition_by", TypeExpression)),
}
