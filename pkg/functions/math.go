package functions

func init() { register(mathFunctions) }

var mathFunctions = []Signature{
	sig("ABS", FamilyMath, TypeNumber, "Returns the absolute value of a number", req("number", TypeNumber)),
	sig("ACOS", FamilyMath, TypeNumber, "Returns the arccosine of a number in radians", req("number", TypeNumber)),
	sig("ACOSH", FamilyMath, TypeNumber, "Returns the inverse hyperbolic cosine of a number", req("number", TypeNumber)),
	sig("ACOT", FamilyMath, TypeNumber, "Returns the arccotangent of a number in radians", req("number", TypeNumber)),
	sig("ACOTH", FamilyMath, TypeNumber, "Returns the inverse hyperbolic cotangent of a number", req("number", TypeNumber)),
	sig("ASIN", FamilyMath, TypeNumber, "Returns the arcsine of a number in radians", req("number", TypeNumber)),
	sig("ASINH", FamilyMath, TypeNumber, "Returns the inverse hyperbolic sine of a number", req("number", TypeNumber)),
	sig("ATAN", FamilyMath, TypeNumber, "Returns the arctangent of a number in radians", req("number", TypeNumber)),
	sig("ATANH", FamilyMath, TypeNumber, "Returns the inverse hyperbolic tangent of a number", req("number", TypeNumber)),
	sig("CEILING", FamilyMath, TypeNumber, "Rounds a number up to the nearest multiple of significance", req("number", TypeNumber), req("significance", TypeNumber)),
	sig("COMBIN", FamilyMath, TypeInteger, "Returns the number of combinations of items", req("number", TypeInteger), req("number_chosen", TypeInteger)),
	sig("COMBINA", FamilyMath, TypeInteger, "Returns the number of combinations with repetitions of items", req("number", TypeInteger), req("number_chosen", TypeInteger)),
	sig("CONVERT", FamilyMath, TypeVariant, "Converts an expression to the specified data type", req("expression", TypeExpression), req("data_type", TypeText)),
	sig("COS", FamilyMath, TypeNumber, "Returns the cosine of an angle in radians", req("number", TypeNumber)),
	sig("COSH", FamilyMath, TypeNumber, "Returns the hyperbolic cosine of a number", req("number", TypeNumber)),
	sig("COT", FamilyMath, TypeNumber, "Returns the cotangent of an angle in radians", req("number", TypeNumber)),
	sig("COTH", FamilyMath, TypeNumber, "Returns the hyperbolic cotangent of a number", req("number", TypeNumber)),
	sig("CURRENCY", FamilyMath, TypeNumber, "Evaluates an expression and returns the result as currency", req("value", TypeExpression)),
	sig("DEGREES", FamilyMath, TypeNumber, "Converts radians to degrees", req("angle", TypeNumber)),
	sig("DIVIDE", FamilyMath, TypeNumber, "Divides two numbers, returning an alternate result on division by zero", req("numerator", TypeNumber), req("denominator", TypeNumber), opt("alternate_result", TypeExpression)),
	sig("EVEN", FamilyMath, TypeInteger, "Rounds a number up to the nearest even integer", req("number", TypeNumber)),
	sig("EXP", FamilyMath, TypeNumber, "Returns e raised to the power of a number", req("number", TypeNumber)),
	sig("FACT", FamilyMath, TypeNumber, "Returns the factorial of a number", req("number", TypeInteger)),
	sig("FLOOR", FamilyMath, TypeNumber, "Rounds a number down toward zero to the nearest multiple of significance", req("number", TypeNumber), req("significance", TypeNumber)),
	sig("GCD", FamilyMath, TypeInteger, "Returns the greatest common divisor of two numbers", req("number1", TypeInteger), req("number2", TypeInteger)),
	sig("INT", FamilyMath, TypeInteger, "Rounds a number down to the nearest integer", req("number", TypeNumber)),
	sig("ISO.CEILING", FamilyMath, TypeNumber, "Rounds a number up to the nearest multiple of significance, ignoring sign", req("number", TypeNumber), opt("significance", TypeNumber)),
	sig("LCM", FamilyMath, TypeInteger, "Returns the least common multiple of two numbers", req("number1", TypeInteger), req("number2", TypeInteger)),
	sig("LN", FamilyMath, TypeNumber, "Returns the natural logarithm of a number", req("number", TypeNumber)),
	sig("LOG", FamilyMath, TypeNumber, "Returns the logarithm of a number to the given base", req("number", TypeNumber), opt("base", TypeNumber)),
	sig("LOG10", FamilyMath, TypeNumber, "Returns the base-10 logarithm of a number", req("number", TypeNumber)),
	sig("MOD", FamilyMath, TypeNumber, "Returns the remainder of a division", req("number", TypeNumber), req("divisor", TypeNumber)),
	sig("MROUND", FamilyMath, TypeNumber, "Rounds a number to the nearest multiple", req("number", TypeNumber), req("multiple", TypeNumber)),
	sig("ODD", FamilyMath, TypeInteger, "Rounds a number up to the nearest odd integer", req("number", TypeNumber)),
	sig("PI", FamilyMath, TypeNumber, "Returns the value of pi"),
	sig("POWER", FamilyMath, TypeNumber, "Returns a number raised to a power", req("number", TypeNumber), req("power", TypeNumber)),
	sig("QUOTIENT", FamilyMath, TypeInteger, "Returns the integer portion of a division", req("numerator", TypeNumber), req("denominator", TypeNumber)),
	sig("RADIANS", FamilyMath, TypeNumber, "Converts degrees to radians", req("angle", TypeNumber)),
	sig("RAND", FamilyMath, TypeNumber, "Returns a random number between 0 and 1"),
	sig("RANDBETWEEN", FamilyMath, TypeInteger, "Returns a random integer between two numbers", req("bottom", TypeInteger), req("top", TypeInteger)),
	sig("ROUND", FamilyMath, TypeNumber, "Rounds a number to the specified number of digits", req("number", TypeNumber), req("num_digits", TypeInteger)),
	sig("ROUNDDOWN", FamilyMath, TypeNumber, "Rounds a number down toward zero", req("number", TypeNumber), req("num_digits", TypeInteger)),
	sig("ROUNDUP", FamilyMath, TypeNumber, "Rounds a number up away from zero", req("number", TypeNumber), req("num_digits", TypeInteger)),
	sig("SIGN", FamilyMath, TypeInteger, "Returns the sign of a number", req("number", TypeNumber)),
	sig("SIN", FamilyMath, TypeNumber, "Returns the sine of an angle in radians", req("number", TypeNumber)),
	sig("SINH", FamilyMath, TypeNumber, "Returns the hyperbolic sine of a number", req("number", TypeNumber)),
	sig("SQRT", FamilyMath, TypeNumber, "Returns the square root of a number", req("number", TypeNumber)),
	sig("SQRTPI", FamilyMath, TypeNumber, "Returns the square root of a number multiplied by pi", req("number", TypeNumber)),
	sig("TAN", FamilyMath, TypeNumber, "Returns the tangent of an angle in radians", req("number", TypeNumber)),
	sig("TANH", FamilyMath, TypeNumber, "Returns the hyperbolic tangent of a number", req("number", TypeNumber)),
	sig("TRUNC", FamilyMath, TypeNumber, "Truncates a number to an integer by removing the fractional part", req("number", TypeNumber), opt("num_digits", TypeInteger)),
}
