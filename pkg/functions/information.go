package functions

func init() { register(informationFunctions) }

var informationFunctions = []Signature{
	sig("CONTAINS", FamilyInformation, TypeBoolean, "Returns TRUE when a row with the given column values exists in a table", req("table", TypeTable), req("column", TypeColumn), req("value", TypeExpression), opt("column2", TypeColumn), opt("value2", TypeExpression)),
	sig("CONTAINSROW", FamilyInformation, TypeBoolean, "Returns TRUE when a row of values exists in a table", req("table", TypeTable), req("value", TypeExpression), opt("value2", TypeExpression)),
	sig("CONTAINSSTRING", FamilyInformation, TypeBoolean, "Returns TRUE when one string contains another, case-insensitive", req("within_text", TypeText), req("find_text", TypeText)),
	sig("CONTAINSSTRINGEXACT", FamilyInformation, TypeBoolean, "Returns TRUE when one string contains another, case-sensitive", req("within_text", TypeText), req("find_text", TypeText)),
	sig("CUSTOMDATA", FamilyInformation, TypeText, "Returns the CustomData property of the connection string"),
	sig("HASONEFILTER", FamilyInformation, TypeBoolean, "Returns TRUE when the column has exactly one directly filtered value", req("column", TypeColumn)),
	sig("HASONEVALUE", FamilyInformation, TypeBoolean, "Returns TRUE when the column has exactly one value in filter context", req("column", TypeColumn)),
	sig("ISAFTER", FamilyInformation, TypeBoolean, "Returns TRUE when the value tuple sorts after the comparison tuple", req("value1", TypeExpression), req("value2", TypeExpression), opt("order", TypeInteger)),
	sig("ISBLANK", FamilyInformation, TypeBoolean, "Returns TRUE when the value is blank", req("value", TypeExpression)),
	sig("ISCROSSFILTERED", FamilyInformation, TypeBoolean, "Returns TRUE when the column or table is filtered through another column", req("table_or_column", TypeVariant)),
	sig("ISEMPTY", FamilyInformation, TypeBoolean, "Returns TRUE when the table has no rows", req("table", TypeTable)),
	sig("ISERROR", FamilyInformation, TypeBoolean, "Returns TRUE when the expression raises an error", req("value", TypeExpression)),
	sig("ISEVEN", FamilyInformation, TypeBoolean, "Returns TRUE when the number is even", req("number", TypeNumber)),
	sig("ISFILTERED", FamilyInformation, TypeBoolean, "Returns TRUE when the column or table is directly filtered", req("table_or_column", TypeVariant)),
	sig("ISINSCOPE", FamilyInformation, TypeBoolean, "Returns TRUE when the column is a level in a hierarchy of levels", req("column", TypeColumn)),
	sig("ISLOGICAL", FamilyInformation, TypeBoolean, "Returns TRUE when the value is a logical value", req("value", TypeExpression)),
	sig("ISNONTEXT", FamilyInformation, TypeBoolean, "Returns TRUE when the value is not text", req("value", TypeExpression)),
	sig("ISNUMBER", FamilyInformation, TypeBoolean, "Returns TRUE when the value is numeric", req("value", TypeExpression)),
	sig("ISODD", FamilyInformation, TypeBoolean, "Returns TRUE when the number is odd", req("number", TypeNumber)),
	sig("ISONORAFTER", FamilyInformation, TypeBoolean, "Returns TRUE when the value tuple sorts on or after the comparison tuple", req("value1", TypeExpression), req("value2", TypeExpression), opt("order", TypeInteger)),
	sig("ISSELECTEDMEASURE", FamilyInformation, TypeBoolean, "Returns TRUE when the measure in context is one of the listed measures", req("measure", TypeExpression), opt("measure2", TypeExpression)),
	sig("ISSUBTOTAL", FamilyInformation, TypeBoolean, "Returns TRUE when the current row contains a subtotal for the column", req("column", TypeColumn)),
	sig("ISTEXT", FamilyInformation, TypeBoolean, "Returns TRUE when the value is text", req("value", TypeExpression)),
	sig("SELECTEDMEASURE", FamilyInformation, TypeVariant, "Returns a reference to the measure in context, for calculation items"),
	sig("SELECTEDMEASUREFORMATSTRING", FamilyInformation, TypeText, "Returns the format string of the measure in context"),
	sig("SELECTEDMEASURENAME", FamilyInformation, TypeText, "Returns the name of the measure in context"),
	sig("USERCULTURE", FamilyInformation, TypeText, "Returns the locale of the current user"),
	sig("USERNAME", FamilyInformation, TypeText, "Returns the domain and username of the current connection"),
	sig("USEROBJECTID", FamilyInformation, TypeText, "Returns the object id or SID of the current user"),
	sig("USERPRINCIPALNAME", FamilyInformation, TypeText, "Returns the user principal name of the current user"),
}
