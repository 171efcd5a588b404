package functions

func init() { register(dateTimeFunctions) }

var dateTimeFunctions = []Signature{
	sig("CALENDAR", FamilyDateTime, TypeTable, "Returns a table with a single Date column spanning a contiguous range", req("start_date", TypeDateTime), req("end_date", TypeDateTime)),
	sig("CALENDARAUTO", FamilyDateTime, TypeTable, "Returns a table with a single Date column covering the dates found in the model", opt("fiscal_year_end_month", TypeInteger)),
	sig("DATE", FamilyDateTime, TypeDateTime, "Returns the specified date in datetime format", req("year", TypeInteger), req("month", TypeInteger), req("day", TypeInteger)),
	sig("DATEDIFF", FamilyDateTime, TypeInteger, "Returns the count of interval boundaries crossed between two dates", req("start_date", TypeDateTime), req("end_date", TypeDateTime), req("interval", TypeText)),
	sig("DATEVALUE", FamilyDateTime, TypeDateTime, "Converts a date in text format to a date in datetime format", req("date_text", TypeText)),
	sig("DAY", FamilyDateTime, TypeInteger, "Returns the day of the month, a number from 1 to 31", req("date", TypeDateTime)),
	sig("EDATE", FamilyDateTime, TypeDateTime, "Returns the date a given number of months before or after the start date", req("start_date", TypeDateTime), req("months", TypeInteger)),
	sig("EOMONTH", FamilyDateTime, TypeDateTime, "Returns the last day of the month a given number of months before or after the start date", req("start_date", TypeDateTime), req("months", TypeInteger)),
	sig("HOUR", FamilyDateTime, TypeInteger, "Returns the hour as a number from 0 to 23", req("datetime", TypeDateTime)),
	sig("MINUTE", FamilyDateTime, TypeInteger, "Returns the minute as a number from 0 to 59", req("datetime", TypeDateTime)),
	sig("MONTH", FamilyDateTime, TypeInteger, "Returns the month as a number from 1 to 12", req("date", TypeDateTime)),
	sig("NETWORKDAYS", FamilyDateTime, TypeInteger, "Returns the number of whole workdays between two dates", req("start_date", TypeDateTime), req("end_date", TypeDateTime), opt("weekend", TypeInteger), opt("holidays", TypeTable)),
	sig("NOW", FamilyDateTime, TypeDateTime, "Returns the current date and time"),
	sig("QUARTER", FamilyDateTime, TypeInteger, "Returns the quarter as a number from 1 to 4", req("date", TypeDateTime)),
	sig("SECOND", FamilyDateTime, TypeInteger, "Returns the second as a number from 0 to 59", req("datetime", TypeDateTime)),
	sig("TIME", FamilyDateTime, TypeDateTime, "Converts hours, minutes and seconds to a time in datetime format", req("hour", TypeInteger), req("minute", TypeInteger), req("second", TypeInteger)),
	sig("TIMEVALUE", FamilyDateTime, TypeDateTime, "Converts a time in text format to a time in datetime format", req("time_text", TypeText)),
	sig("TODAY", FamilyDateTime, TypeDateTime, "Returns the current date"),
	sig("UTCNOW", FamilyDateTime, TypeDateTime, "Returns the current UTC date and time"),
	sig("UTCTODAY", FamilyDateTime, TypeDateTime, "Returns the current UTC date"),
	sig("WEEKDAY", FamilyDateTime, TypeInteger, "Returns the day of the week as a number", req("date", TypeDateTime), opt("return_type", TypeInteger)),
	sig("WEEKNUM", FamilyDateTime, TypeInteger, "Returns the week number of the year", req("date", TypeDateTime), opt("return_type", TypeInteger)),
	sig("YEAR", FamilyDateTime, TypeInteger, "Returns the year of a date as a four digit number", req("date", TypeDateTime)),
	sig("YEARFRAC", FamilyDateTime, TypeNumber, "Returns the fraction of a year between two dates", req("start_date", TypeDateTime), req("end_date", TypeDateTime), opt("basis", TypeInteger)),
}
