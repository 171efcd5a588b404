package functions

func init() { register(visualFunctions) }

// Visual calculation functions only evaluate inside a visual matrix, but
// they still tokenize and parse like any other call, so they stay in the
// catalog for name and arity checks.
var visualFunctions = []Signature{
	sig("COLLAPSE", FamilyVisual, TypeVariant, "Evaluates an expression one level up the hierarchy of the visual axis", req("expression", TypeExpression), req("axis", TypeExpression)),
	sig("COLLAPSEALL", FamilyVisual, TypeVariant, "Evaluates an expression at the total level of the visual axis", req("expression", TypeExpression), req("axis", TypeExpression)),
	sig("EXPAND", FamilyVisual, TypeVariant, "Evaluates an expression one level down the hierarchy of the visual axis", req("expression", TypeExpression), req("axis", TypeExpression)),
	sig("EXPANDALL", FamilyVisual, TypeVariant, "Evaluates an expression at the leaf level of the visual axis", req("expression", TypeExpression), req("axis", TypeExpression)),
	sig("FIRST", FamilyVisual, TypeVariant, "Returns the value from the first row of the visual axis", req("column", TypeColumn), opt("axis", TypeExpression)),
	sig("LAST", FamilyVisual, TypeVariant, "Returns the value from the last row of the visual axis", req("column", TypeColumn), opt("axis", TypeExpression)),
	sig("MOVINGAVERAGE", FamilyVisual, TypeNumber, "Returns a moving average along the visual axis", req("column", TypeColumn), req("window_size", TypeInteger), opt("axis", TypeExpression), opt("blanks", TypeText)),
	sig("NEXT", FamilyVisual, TypeVariant, "Returns the value from the next row of the visual axis", req("column", TypeColumn), opt("steps", TypeInteger), opt("axis", TypeExpression)),
	sig("PREVIOUS", FamilyVisual, TypeVariant, "Returns the value from the previous row of the visual axis", req("column", TypeColumn), opt("steps", TypeInteger), opt("axis", TypeExpression)),
	sig("RANGE", FamilyVisual, TypeTable, "Returns a slice of rows relative to the current row of the visual axis", req("from", TypeInteger), opt("to", TypeInteger), opt("axis", TypeExpression)),
	sig("RUNNINGSUM", FamilyVisual, TypeNumber, "Returns a running sum along the visual axis", req("column", TypeColumn), opt("axis", TypeExpression), opt("blanks", TypeText)),
}
