package functions

func init() { register(statisticalFunctions) }

var statisticalFunctions = []Signature{
	sig("BETA.DIST", FamilyStatistical, TypeNumber, "Returns the beta distribution", req("x", TypeNumber), req("alpha", TypeNumber), req("beta", TypeNumber), req("cumulative", TypeBoolean), opt("a", TypeNumber), opt("b", TypeNumber)),
	sig("BETA.INV", FamilyStatistical, TypeNumber, "Returns the inverse of the beta cumulative distribution", req("probability", TypeNumber), req("alpha", TypeNumber), req("beta", TypeNumber), opt("a", TypeNumber), opt("b", TypeNumber)),
	sig("CHISQ.DIST", FamilyStatistical, TypeNumber, "Returns the chi-squared distribution", req("x", TypeNumber), req("deg_freedom", TypeInteger), req("cumulative", TypeBoolean)),
	sig("CHISQ.DIST.RT", FamilyStatistical, TypeNumber, "Returns the right-tailed chi-squared distribution", req("x", TypeNumber), req("deg_freedom", TypeInteger)),
	sig("CHISQ.INV", FamilyStatistical, TypeNumber, "Returns the inverse of the left-tailed chi-squared distribution", req("probability", TypeNumber), req("deg_freedom", TypeInteger)),
	sig("CHISQ.INV.RT", FamilyStatistical, TypeNumber, "Returns the inverse of the right-tailed chi-squared distribution", req("probability", TypeNumber), req("deg_freedom", TypeInteger)),
	sig("CONFIDENCE.NORM", FamilyStatistical, TypeNumber, "Returns the confidence interval for a population mean, normal distribution", req("alpha", TypeNumber), req("standard_dev", TypeNumber), req("size", TypeInteger)),
	sig("CONFIDENCE.T", FamilyStatistical, TypeNumber, "Returns the confidence interval for a population mean, t-distribution", req("alpha", TypeNumber), req("standard_dev", TypeNumber), req("size", TypeInteger)),
	sig("EXPON.DIST", FamilyStatistical, TypeNumber, "Returns the exponential distribution", req("x", TypeNumber), req("lambda", TypeNumber), req("cumulative", TypeBoolean)),
	sig("GEOMEAN", FamilyStatistical, TypeNumber, "Returns the geometric mean of the numbers in a column", req("column", TypeColumn)),
	sig("GEOMEANX", FamilyStatistical, TypeNumber, "Returns the geometric mean of an expression evaluated for each row of a table", req("table", TypeTable), req("expression", TypeExpression)),
	sig("MEDIAN", FamilyStatistical, TypeNumber, "Returns the median of the numbers in a column", req("column", TypeColumn)),
	sig("MEDIANX", FamilyStatistical, TypeNumber, "Returns the median of an expression evaluated for each row of a table", req("table", TypeTable), req("expression", TypeExpression)),
	sig("NORM.DIST", FamilyStatistical, TypeNumber, "Returns the normal distribution for the specified mean and standard deviation", req("x", TypeNumber), req("mean", TypeNumber), req("standard_dev", TypeNumber), req("cumulative", TypeBoolean)),
	sig("NORM.INV", FamilyStatistical, TypeNumber, "Returns the inverse of the normal cumulative distribution", req("probability", TypeNumber), req("mean", TypeNumber), req("standard_dev", TypeNumber)),
	sig("NORM.S.DIST", FamilyStatistical, TypeNumber, "Returns the standard normal distribution", req("z", TypeNumber), req("cumulative", TypeBoolean)),
	sig("NORM.S.INV", FamilyStatistical, TypeNumber, "Returns the inverse of the standard normal cumulative distribution", req("probability", TypeNumber)),
	sig("PERCENTILE.EXC", FamilyStatistical, TypeNumber, "Returns the k-th percentile of values in a column, exclusive", req("column", TypeColumn), req("k", TypeNumber)),
	sig("PERCENTILE.INC", FamilyStatistical, TypeNumber, "Returns the k-th percentile of values in a column, inclusive", req("column", TypeColumn), req("k", TypeNumber)),
	sig("PERCENTILEX.EXC", FamilyStatistical, TypeNumber, "Returns the k-th percentile of an expression over a table, exclusive", req("table", TypeTable), req("expression", TypeExpression), req("k", TypeNumber)),
	sig("PERCENTILEX.INC", FamilyStatistical, TypeNumber, "Returns the k-th percentile of an expression over a table, inclusive", req("table", TypeTable), req("expression", TypeExpression), req("k", TypeNumber)),
	sig("PERMUT", FamilyStatistical, TypeInteger, "Returns the number of permutations of items", req("number", TypeInteger), req("number_chosen", TypeInteger)),
	sig("POISSON.DIST", FamilyStatistical, TypeNumber, "Returns the Poisson distribution", req("x", TypeNumber), req("mean", TypeNumber), req("cumulative", TypeBoolean)),
	sig("RANK.EQ", FamilyStatistical, TypeInteger, "Returns the rank of a number in a column of numbers", req("value", TypeExpression), req("column", TypeColumn), opt("order", TypeInteger)),
	sig("RANKX", FamilyStatistical, TypeInteger, "Returns the rank of an expression evaluated for each row of a table", req("table", TypeTable), req("expression", TypeExpression), opt("value", TypeExpression), opt("order", TypeInteger), opt("ties", TypeText)),
	sig("SAMPLE", FamilyStatistical, TypeTable, "Returns a sample of rows from a table", req("size", TypeInteger), req("table", TypeTable), opt("order_by", TypeExpression), opt("order", TypeInteger)),
	sig("STDEV.P", FamilyStatistical, TypeNumber, "Returns the standard deviation of a column, whole population", req("column", TypeColumn)),
	sig("STDEV.S", FamilyStatistical, TypeNumber, "Returns the standard deviation of a column, sample population", req("column", TypeColumn)),
	sig("STDEVX.P", FamilyStatistical, TypeNumber, "Returns the standard deviation of an expression over a table, whole population", req("table", TypeTable), req("expression", TypeExpression)),
	sig("STDEVX.S", FamilyStatistical, TypeNumber, "Returns the standard deviation of an expression over a table, sample population", req("table", TypeTable), req("expression", TypeExpression)),
	sig("T.DIST", FamilyStatistical, TypeNumber, "Returns the left-tailed Student t-distribution", req("x", TypeNumber), req("deg_freedom", TypeInteger), req("cumulative", TypeBoolean)),
	sig("T.DIST.2T", FamilyStatistical, TypeNumber, "Returns the two-tailed Student t-distribution", req("x", TypeNumber), req("deg_freedom", TypeInteger)),
	sig("T.DIST.RT", FamilyStatistical, TypeNumber, "Returns the right-tailed Student t-distribution", req("x", TypeNumber), req("deg_freedom", TypeInteger)),
	sig("T.INV", FamilyStatistical, TypeNumber, "Returns the left-tailed inverse of the Student t-distribution", req("probability", TypeNumber), req("deg_freedom", TypeInteger)),
	sig("T.INV.2T", FamilyStatistical, TypeNumber, "Returns the two-tailed inverse of the Student t-distribution", req("probability", TypeNumber), req("deg_freedom", TypeInteger)),
	sig("VAR.P", FamilyStatistical, TypeNumber, "Returns the variance of a column, whole population", req("column", TypeColumn)),
	sig("VAR.S", FamilyStatistical, TypeNumber, "Returns the variance of a column, sample population", req("column", TypeColumn)),
	sig("VARX.P", FamilyStatistical, TypeNumber, "Returns the variance of an expression over a table, whole population", req("table", TypeTable), req("expression", TypeExpression)),
	sig("VARX.S", FamilyStatistical, TypeNumber, "Returns the variance of an expression over a table, sample population", req("table", TypeTable), req("expression", TypeExpression)),
}
