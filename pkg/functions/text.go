package functions

func init() { register(textFunctions) }

var textFunctions = []Signature{
	sig("COMBINEVALUES", FamilyText, TypeText, "Joins two or more text strings with a delimiter", req("delimiter", TypeText), req("expression1", TypeExpression), req("expression2", TypeExpression)),
	sig("CONCATENATE", FamilyText, TypeText, "Joins two text strings into one", req("text1", TypeText), req("text2", TypeText)),
	sig("CONCATENATEX", FamilyText, TypeText, "Concatenates an expression evaluated for each row of a table", req("table", TypeTable), req("expression", TypeExpression), opt("delimiter", TypeText), opt("order_by", TypeExpression), opt("order", TypeInteger)),
	sig("EXACT", FamilyText, TypeBoolean, "Compares two text strings case-sensitively", req("text1", TypeText), req("text2", TypeText)),
	sig("FIND", FamilyText, TypeInteger, "Returns the starting position of one text string within another, case-sensitive", req("find_text", TypeText), req("within_text", TypeText), opt("start_num", TypeInteger), opt("not_found_value", TypeExpression)),
	sig("FIXED", FamilyText, TypeText, "Rounds a number and returns the result as text", req("number", TypeNumber), opt("decimals", TypeInteger), opt("no_commas", TypeBoolean)),
	sig("FORMAT", FamilyText, TypeText, "Converts a value to text with the given format string", req("value", TypeExpression), req("format_string", TypeText), opt("locale_name", TypeText)),
	sig("LEFT", FamilyText, TypeText, "Returns the leftmost characters of a text string", req("text", TypeText), opt("num_chars", TypeInteger)),
	sig("LEN", FamilyText, TypeInteger, "Returns the number of characters in a text string", req("text", TypeText)),
	sig("LOWER", FamilyText, TypeText, "Converts a text string to lowercase", req("text", TypeText)),
	sig("MID", FamilyText, TypeText, "Returns characters from the middle of a text string", req("text", TypeText), req("start_num", TypeInteger), req("num_chars", TypeInteger)),
	sig("REPLACE", FamilyText, TypeText, "Replaces part of a text string with a different string by position", req("old_text", TypeText), req("start_num", TypeInteger), req("num_chars", TypeInteger), req("new_text", TypeText)),
	sig("REPT", FamilyText, TypeText, "Repeats a text string a given number of times", req("text", TypeText), req("num_times", TypeInteger)),
	sig("RIGHT", FamilyText, TypeText, "Returns the rightmost characters of a text string", req("text", TypeText), opt("num_chars", TypeInteger)),
	sig("SEARCH", FamilyText, TypeInteger, "Returns the starting position of one text string within another, case-insensitive", req("find_text", TypeText), req("within_text", TypeText), opt("start_num", TypeInteger), opt("not_found_value", TypeExpression)),
	sig("SUBSTITUTE", FamilyText, TypeText, "Replaces occurrences of old text with new text in a string", req("text", TypeText), req("old_text", TypeText), req("new_text", TypeText), opt("instance_num", TypeInteger)),
	sig("TRIM", FamilyText, TypeText, "Removes leading and trailing spaces and collapses internal runs", req("text", TypeText)),
	sig("UNICHAR", FamilyText, TypeText, "Returns the character for the given Unicode code point", req("number", TypeInteger)),
	sig("UNICODE", FamilyText, TypeInteger, "Returns the code point of the first character of a text string", req("text", TypeText)),
	sig("UPPER", FamilyText, TypeText, "Converts a text string to uppercase", req("text", TypeText)),
	sig("VALUE", FamilyText, TypeNumber, "Converts a text string that represents a number to a number", req("text", TypeText)),
}
