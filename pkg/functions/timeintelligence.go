package functions

func init() { register(timeIntelligenceFunctions) }

var timeIntelligenceFunctions = []Signature{
	sig("CLOSINGBALANCEMONTH", FamilyTimeIntelligence, TypeVariant, "Evaluates an expression at the last date of the month in context", req("expression", TypeExpression), req("dates", TypeColumn), opt("filter", TypeExpression)),
	sig("CLOSINGBALANCEQUARTER", FamilyTimeIntelligence, TypeVariant, "Evaluates an expression at the last date of the quarter in context", req("expression", TypeExpression), req("dates", TypeColumn), opt("filter", TypeExpression)),
	sig("CLOSINGBALANCEYEAR", FamilyTimeIntelligence, TypeVariant, "Evaluates an expression at the last date of the year in context", req("expression", TypeExpression), req("dates", TypeColumn), opt("filter", TypeExpression), opt("year_end_date", TypeText)),
	sig("DATEADD", FamilyTimeIntelligence, TypeTable, "Shifts the dates in context by the given number of intervals", req("dates", TypeColumn), req("number_of_intervals", TypeInteger), req("interval", TypeText)),
	sig("DATESBETWEEN", FamilyTimeIntelligence, TypeTable, "Returns the dates between two boundary dates", req("dates", TypeColumn), req("start_date", TypeDateTime), req("end_date", TypeDateTime)),
	sig("DATESINPERIOD", FamilyTimeIntelligence, TypeTable, "Returns the dates in a period starting from a given date", req("dates", TypeColumn), req("start_date", TypeDateTime), req("number_of_intervals", TypeInteger), req("interval", TypeText)),
	sig("DATESMTD", FamilyTimeIntelligence, TypeTable, "Returns the month-to-date dates in context", req("dates", TypeColumn)),
	sig("DATESQTD", FamilyTimeIntelligence, TypeTable, "Returns the quarter-to-date dates in context", req("dates", TypeColumn)),
	sig("DATESYTD", FamilyTimeIntelligence, TypeTable, "Returns the year-to-date dates in context", req("dates", TypeColumn), opt("year_end_date", TypeText)),
	sig("ENDOFMONTH", FamilyTimeIntelligence, TypeDateTime, "Returns the last date of the month in context", req("dates", TypeColumn)),
	sig("ENDOFQUARTER", FamilyTimeIntelligence, TypeDateTime, "Returns the last date of the quarter in context", req("dates", TypeColumn)),
	sig("ENDOFYEAR", FamilyTimeIntelligence, TypeDateTime, "Returns the last date of the year in context", req("dates", TypeColumn), opt("year_end_date", TypeText)),
	sig("FIRSTDATE", FamilyTimeIntelligence, TypeDateTime, "Returns the first date in context for the column", req("dates", TypeColumn)),
	sig("FIRSTNONBLANK", FamilyTimeIntelligence, TypeVariant, "Returns the first value of a column for which the expression is not blank", req("column", TypeColumn), req("expression", TypeExpression)),
	sig("FIRSTNONBLANKVALUE", FamilyTimeIntelligence, TypeVariant, "Returns the expression value for the first column value where it is not blank", req("column", TypeColumn), req("expression", TypeExpression)),
	sig("LASTDATE", FamilyTimeIntelligence, TypeDateTime, "Returns the last date in context for the column", req("dates", TypeColumn)),
	sig("LASTNONBLANK", FamilyTimeIntelligence, TypeVariant, "Returns the last value of a column for which the expression is not blank", req("column", TypeColumn), req("expression", TypeExpression)),
	sig("LASTNONBLANKVALUE", FamilyTimeIntelligence, TypeVariant, "Returns the expression value for the last column value where it is not blank", req("column", TypeColumn), req("expression", TypeExpression)),
	sig("NEXTDAY", FamilyTimeIntelligence, TypeTable, "Returns the day after the last date in context", req("dates", TypeColumn)),
	sig("NEXTMONTH", FamilyTimeIntelligence, TypeTable, "Returns the month after the last date in context", req("dates", TypeColumn)),
	sig("NEXTQUARTER", FamilyTimeIntelligence, TypeTable, "Returns the quarter after the last date in context", req("dates", TypeColumn)),
	sig("NEXTYEAR", FamilyTimeIntelligence, TypeTable, "Returns the year after the last date in context", req("dates", TypeColumn), opt("year_end_date", TypeText)),
	sig("OPENINGBALANCEMONTH", FamilyTimeIntelligence, TypeVariant, "Evaluates an expression at the last date before the month in context", req("expression", TypeExpression), req("dates", TypeColumn), opt("filter", TypeExpression)),
	sig("OPENINGBALANCEQUARTER", FamilyTimeIntelligence, TypeVariant, "Evaluates an expression at the last date before the quarter in context", req("expression", TypeExpression), req("dates", TypeColumn), opt("filter", TypeExpression)),
	sig("OPENINGBALANCEYEAR", FamilyTimeIntelligence, TypeVariant, "Evaluates an expression at the last date before the year in context", req("expression", TypeExpression), req("dates", TypeColumn), opt("filter", TypeExpression), opt("year_end_date", TypeText)),
	sig("PARALLELPERIOD", FamilyTimeIntelligence, TypeTable, "Returns a whole period parallel to the dates in context", req("dates", TypeColumn), req("number_of_intervals", TypeInteger), req("interval", TypeText)),
	sig("PREVIOUSDAY", FamilyTimeIntelligence, TypeTable, "Returns the day before the first date in context", req("dates", TypeColumn)),
	sig("PREVIOUSMONTH", FamilyTimeIntelligence, TypeTable, "Returns the month before the first date in context", req("dates", TypeColumn)),
	sig("PREVIOUSQUARTER", FamilyTimeIntelligence, TypeTable, "Returns the quarter before the first date in context", req("dates", TypeColumn)),
	sig("PREVIOUSYEAR", FamilyTimeIntelligence, TypeTable, "Returns the year before the first date in context", req("dates", TypeColumn), opt("year_end_date", TypeText)),
	sig("SAMEPERIODLASTYEAR", FamilyTimeIntelligence, TypeTable, "Returns the dates in context shifted back one year", req("dates", TypeColumn)),
	sig("STARTOFMONTH", FamilyTimeIntelligence, TypeDateTime, "Returns the first date of the month in context", req("dates", TypeColumn)),
	sig("STARTOFQUARTER", FamilyTimeIntelligence, TypeDateTime, "Returns the first date of the quarter in context", req("dates", TypeColumn)),
	sig("STARTOFYEAR", FamilyTimeIntelligence, TypeDateTime, "Returns the first date of the year in context", req("dates", TypeColumn)),
	sig("TOTALMTD", FamilyTimeIntelligence, TypeVariant, "Evaluates an expression month-to-date", req("expression", TypeExpression), req("dates", TypeColumn), opt("filter", TypeExpression)),
	sig("TOTALQTD", FamilyTimeIntelligence, TypeVariant, "Evaluates an expression quarter-to-date", req("expression", TypeExpression), req("dates", TypeColumn), opt("filter", TypeExpression)),
	sig("TOTALYTD", FamilyTimeIntelligence, TypeVariant, "Evaluates an expression year-to-date", req("expression", TypeExpression), req("dates", TypeColumn), opt("filter", TypeExpression), opt("year_end_date", TypeText)),
}
