package functions

func init() { register(logicalFunctions) }

var logicalFunctions = []Signature{
	sig("AND", FamilyLogical, TypeBoolean, "Returns TRUE when both arguments are TRUE", req("logical1", TypeBoolean), req("logical2", TypeBoolean)),
	sig("BITAND", FamilyLogical, TypeInteger, "Returns the bitwise AND of two numbers", req("number1", TypeInteger), req("number2", TypeInteger)),
	sig("BITLSHIFT", FamilyLogical, TypeInteger, "Returns a number shifted left by the specified number of bits", req("number", TypeInteger), req("shift_amount", TypeInteger)),
	sig("BITOR", FamilyLogical, TypeInteger, "Returns the bitwise OR of two numbers", req("number1", TypeInteger), req("number2", TypeInteger)),
	sig("BITRSHIFT", FamilyLogical, TypeInteger, "Returns a number shifted right by the specified number of bits", req("number", TypeInteger), req("shift_amount", TypeInteger)),
	sig("BITXOR", FamilyLogical, TypeInteger, "Returns the bitwise XOR of two numbers", req("number1", TypeInteger), req("number2", TypeInteger)),
	sig("BLANK", FamilyLogical, TypeVariant, "Returns a blank value"),
	sig("COALESCE", FamilyLogical, TypeVariant, "Returns the first expression that does not evaluate to blank", req("expression1", TypeExpression), req("expression2", TypeExpression), opt("expression3", TypeExpression)),
	sig("ERROR", FamilyLogical, TypeVariant, "Raises an error with the given message", req("message", TypeText)),
	sig("FALSE", FamilyLogical, TypeBoolean, "Returns the logical value FALSE"),
	sig("IF", FamilyLogical, TypeVariant, "Returns one value if a condition is TRUE and another if it is FALSE", req("logical_test", TypeBoolean), req("value_if_true", TypeExpression), opt("value_if_false", TypeExpression)),
	sig("IF.EAGER", FamilyLogical, TypeVariant, "Like IF, but always evaluates both branch expressions", req("logical_test", TypeBoolean), req("value_if_true", TypeExpression), opt("value_if_false", TypeExpression)),
	sig("IFERROR", FamilyLogical, TypeVariant, "Returns an alternate value when the expression raises an error", req("value", TypeExpression), req("value_if_error", TypeExpression)),
	sig("NOT", FamilyLogical, TypeBoolean, "Reverses a logical value", req("logical", TypeBoolean)),
	sig("OR", FamilyLogical, TypeBoolean, "Returns TRUE when either argument is TRUE", req("logical1", TypeBoolean), req("logical2", TypeBoolean)),
	sig("SWITCH", FamilyLogical, TypeVariant, "Evaluates an expression against a list of values and returns the matching result", req("expression", TypeExpression), req("value", TypeExpression), req("result", TypeExpression), opt("value2", TypeExpression), opt("result2", TypeExpression), opt("else", TypeExpression)),
	sig("TRUE", FamilyLogical, TypeBoolean, "Returns the logical value TRUE"),
}
