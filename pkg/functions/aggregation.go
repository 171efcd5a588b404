package functions

func init() { register(aggregationFunctions) }

var aggregationFunctions = []Signature{
	sig("APPROXIMATEDISTINCTCOUNT", FamilyAggregation, TypeInteger, "Estimates the number of distinct values in a column", req("column", TypeColumn)),
	sig("AVERAGE", FamilyAggregation, TypeNumber, "Returns the average of all the numbers in a column", req("column", TypeColumn)),
	sig("AVERAGEA", FamilyAggregation, TypeNumber, "Returns the average of the values in a column, treating non-numeric values as zero", req("column", TypeColumn)),
	sig("AVERAGEX", FamilyAggregation, TypeNumber, "Averages an expression evaluated for each row of a table", req("table", TypeTable), req("expression", TypeExpression)),
	sig("COUNT", FamilyAggregation, TypeInteger, "Counts the number of numeric values in a column", req("column", TypeColumn)),
	sig("COUNTA", FamilyAggregation, TypeInteger, "Counts the number of non-blank values in a column", req("column", TypeColumn)),
	sig("COUNTAX", FamilyAggregation, TypeInteger, "Counts non-blank results of an expression evaluated for each row of a table", req("table", TypeTable), req("expression", TypeExpression)),
	sig("COUNTBLANK", FamilyAggregation, TypeInteger, "Counts the number of blank values in a column", req("column", TypeColumn)),
	sig("COUNTROWS", FamilyAggregation, TypeInteger, "Counts the number of rows in a table", opt("table", TypeTable)),
	sig("COUNTX", FamilyAggregation, TypeInteger, "Counts numeric results of an expression evaluated for each row of a table", req("table", TypeTable), req("expression", TypeExpression)),
	sig("DISTINCTCOUNT", FamilyAggregation, TypeInteger, "Counts the number of distinct values in a column", req("column", TypeColumn)),
	sig("DISTINCTCOUNTNOBLANK", FamilyAggregation, TypeInteger, "Counts the number of distinct values in a column, excluding blank", req("column", TypeColumn)),
	sig("MAX", FamilyAggregation, TypeVariant, "Returns the largest value in a column or the larger of two expressions", req("column", TypeColumn), opt("expression", TypeExpression)),
	sig("MAXA", FamilyAggregation, TypeNumber, "Returns the largest value in a column, including logical values", req("column", TypeColumn)),
	sig("MAXX", FamilyAggregation, TypeVariant, "Returns the largest result of an expression evaluated for each row of a table", req("table", TypeTable), req("expression", TypeExpression)),
	sig("MIN", FamilyAggregation, TypeVariant, "Returns the smallest value in a column or the smaller of two expressions", req("column", TypeColumn), opt("expression", TypeExpression)),
	sig("MINA", FamilyAggregation, TypeNumber, "Returns the smallest value in a column, including logical values", req("column", TypeColumn)),
	sig("MINX", FamilyAggregation, TypeVariant, "Returns the smallest result of an expression evaluated for each row of a table", req("table", TypeTable), req("expression", TypeExpression)),
	sig("PRODUCT", FamilyAggregation, TypeNumber, "Returns the product of the numbers in a column", req("column", TypeColumn)),
	sig("PRODUCTX", FamilyAggregation, TypeNumber, "Returns the product of an expression evaluated for each row of a table", req("table", TypeTable), req("expression", TypeExpression)),
	sig("SUM", FamilyAggregation, TypeNumber, "Adds all the numbers in a column", req("column", TypeColumn)),
	sig("SUMX", FamilyAggregation, TypeNumber, "Sums an expression evaluated for each row of a table", req("table", TypeTable), req("expression", TypeExpression)),
}
