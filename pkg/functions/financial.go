package functions

func init() { register(financialFunctions) }

var financialFunctions = []Signature{
	sig("ACCRINT", FamilyFinancial, TypeNumber, "Returns the accrued interest for a security that pays periodic interest", req("issue", TypeDateTime), req("first_interest", TypeDateTime), req("settlement", TypeDateTime), req("rate", TypeNumber), req("par", TypeNumber), req("frequency", TypeInteger), opt("basis", TypeInteger), opt("calc_method", TypeBoolean)),
	sig("ACCRINTM", FamilyFinancial, TypeNumber, "Returns the accrued interest for a security that pays interest at maturity", req("issue", TypeDateTime), req("maturity", TypeDateTime), req("rate", TypeNumber), req("par", TypeNumber), opt("basis", TypeInteger)),
	sig("AMORLINC", FamilyFinancial, TypeNumber, "Returns the depreciation for each accounting period, linear method", req("cost", TypeNumber), req("date_purchased", TypeDateTime), req("first_period", TypeDateTime), req("salvage", TypeNumber), req("period", TypeInteger), req("rate", TypeNumber), opt("basis", TypeInteger)),
	sig("COUPDAYBS", FamilyFinancial, TypeInteger, "Returns the days from the beginning of the coupon period to settlement", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("frequency", TypeInteger), opt("basis", TypeInteger)),
	sig("COUPDAYS", FamilyFinancial, TypeInteger, "Returns the days in the coupon period containing the settlement date", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("frequency", TypeInteger), opt("basis", TypeInteger)),
	sig("COUPDAYSNC", FamilyFinancial, TypeInteger, "Returns the days from settlement to the next coupon date", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("frequency", TypeInteger), opt("basis", TypeInteger)),
	sig("COUPNCD", FamilyFinancial, TypeDateTime, "Returns the next coupon date after the settlement date", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("frequency", TypeInteger), opt("basis", TypeInteger)),
	sig("COUPNUM", FamilyFinancial, TypeInteger, "Returns the number of coupons payable between settlement and maturity", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("frequency", TypeInteger), opt("basis", TypeInteger)),
	sig("COUPPCD", FamilyFinancial, TypeDateTime, "Returns the previous coupon date before the settlement date", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("frequency", TypeInteger), opt("basis", TypeInteger)),
	sig("CUMIPMT", FamilyFinancial, TypeNumber, "Returns the cumulative interest paid between two periods", req("rate", TypeNumber), req("nper", TypeInteger), req("pv", TypeNumber), req("start_period", TypeInteger), req("end_period", TypeInteger), req("type", TypeInteger)),
	sig("CUMPRINC", FamilyFinancial, TypeNumber, "Returns the cumulative principal paid between two periods", req("rate", TypeNumber), req("nper", TypeInteger), req("pv", TypeNumber), req("start_period", TypeInteger), req("end_period", TypeInteger), req("type", TypeInteger)),
	sig("DB", FamilyFinancial, TypeNumber, "Returns the depreciation using the fixed-declining balance method", req("cost", TypeNumber), req("salvage", TypeNumber), req("life", TypeInteger), req("period", TypeInteger), opt("month", TypeInteger)),
	sig("DDB", FamilyFinancial, TypeNumber, "Returns the depreciation using the double-declining balance method", req("cost", TypeNumber), req("salvage", TypeNumber), req("life", TypeInteger), req("period", TypeInteger), opt("factor", TypeNumber)),
	sig("DISC", FamilyFinancial, TypeNumber, "Returns the discount rate for a security", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("pr", TypeNumber), req("redemption", TypeNumber), opt("basis", TypeInteger)),
	sig("DOLLARDE", FamilyFinancial, TypeNumber, "Converts a fractional dollar price to a decimal price", req("fractional_dollar", TypeNumber), req("fraction", TypeInteger)),
	sig("DOLLARFR", FamilyFinancial, TypeNumber, "Converts a decimal dollar price to a fractional price", req("decimal_dollar", TypeNumber), req("fraction", TypeInteger)),
	sig("DURATION", FamilyFinancial, TypeNumber, "Returns the Macaulay duration of a security with periodic interest", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("coupon", TypeNumber), req("yld", TypeNumber), req("frequency", TypeInteger), opt("basis", TypeInteger)),
	sig("EFFECT", FamilyFinancial, TypeNumber, "Returns the effective annual interest rate", req("nominal_rate", TypeNumber), req("npery", TypeInteger)),
	sig("FV", FamilyFinancial, TypeNumber, "Returns the future value of an investment with constant payments", req("rate", TypeNumber), req("nper", TypeInteger), req("pmt", TypeNumber), opt("pv", TypeNumber), opt("type", TypeInteger)),
	sig("INTRATE", FamilyFinancial, TypeNumber, "Returns the interest rate for a fully invested security", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("investment", TypeNumber), req("redemption", TypeNumber), opt("basis", TypeInteger)),
	sig("IPMT", FamilyFinancial, TypeNumber, "Returns the interest payment for a given period of an investment", req("rate", TypeNumber), req("per", TypeInteger), req("nper", TypeInteger), req("pv", TypeNumber), opt("fv", TypeNumber), opt("type", TypeInteger)),
	sig("ISPMT", FamilyFinancial, TypeNumber, "Returns the interest paid during a period of an even-principal loan", req("rate", TypeNumber), req("per", TypeInteger), req("nper", TypeInteger), req("pv", TypeNumber)),
	sig("MDURATION", FamilyFinancial, TypeNumber, "Returns the modified Macaulay duration of a security", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("coupon", TypeNumber), req("yld", TypeNumber), req("frequency", TypeInteger), opt("basis", TypeInteger)),
	sig("NOMINAL", FamilyFinancial, TypeNumber, "Returns the annual nominal interest rate", req("effect_rate", TypeNumber), req("npery", TypeInteger)),
	sig("NPER", FamilyFinancial, TypeNumber, "Returns the number of periods for an investment with constant payments", req("rate", TypeNumber), req("pmt", TypeNumber), req("pv", TypeNumber), opt("fv", TypeNumber), opt("type", TypeInteger)),
	sig("PDURATION", FamilyFinancial, TypeNumber, "Returns the number of periods for an investment to reach a value", req("rate", TypeNumber), req("pv", TypeNumber), req("fv", TypeNumber)),
	sig("PMT", FamilyFinancial, TypeNumber, "Returns the periodic payment for an annuity", req("rate", TypeNumber), req("nper", TypeInteger), req("pv", TypeNumber), opt("fv", TypeNumber), opt("type", TypeInteger)),
	sig("PPMT", FamilyFinancial, TypeNumber, "Returns the principal payment for a given period of an investment", req("rate", TypeNumber), req("per", TypeInteger), req("nper", TypeInteger), req("pv", TypeNumber), opt("fv", TypeNumber), opt("type", TypeInteger)),
	sig("PRICE", FamilyFinancial, TypeNumber, "Returns the price per 100 face value of a security with periodic interest", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("rate", TypeNumber), req("yld", TypeNumber), req("redemption", TypeNumber), req("frequency", TypeInteger), opt("basis", TypeInteger)),
	sig("PV", FamilyFinancial, TypeNumber, "Returns the present value of an investment with constant payments", req("rate", TypeNumber), req("nper", TypeInteger), req("pmt", TypeNumber), opt("fv", TypeNumber), opt("type", TypeInteger)),
	sig("RATE", FamilyFinancial, TypeNumber, "Returns the interest rate per period of an annuity", req("nper", TypeInteger), req("pmt", TypeNumber), req("pv", TypeNumber), opt("fv", TypeNumber), opt("type", TypeInteger), opt("guess", TypeNumber)),
	sig("RECEIVED", FamilyFinancial, TypeNumber, "Returns the amount received at maturity for a fully invested security", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("investment", TypeNumber), req("discount", TypeNumber), opt("basis", TypeInteger)),
	sig("RRI", FamilyFinancial, TypeNumber, "Returns an equivalent interest rate for the growth of an investment", req("nper", TypeInteger), req("pv", TypeNumber), req("fv", TypeNumber)),
	sig("SLN", FamilyFinancial, TypeNumber, "Returns the straight-line depreciation for one period", req("cost", TypeNumber), req("salvage", TypeNumber), req("life", TypeInteger)),
	sig("SYD", FamilyFinancial, TypeNumber, "Returns the sum-of-years digits depreciation for a period", req("cost", TypeNumber), req("salvage", TypeNumber), req("life", TypeInteger), req("per", TypeInteger)),
	sig("TBILLEQ", FamilyFinancial, TypeNumber, "Returns the bond-equivalent yield for a Treasury bill", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("discount", TypeNumber)),
	sig("TBILLPRICE", FamilyFinancial, TypeNumber, "Returns the price per 100 face value for a Treasury bill", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("discount", TypeNumber)),
	sig("TBILLYIELD", FamilyFinancial, TypeNumber, "Returns the yield for a Treasury bill", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("pr", TypeNumber)),
	sig("VDB", FamilyFinancial, TypeNumber, "Returns the declining balance depreciation for a partial period", req("cost", TypeNumber), req("salvage", TypeNumber), req("life", TypeInteger), req("start_period", TypeNumber), req("end_period", TypeNumber), opt("factor", TypeNumber), opt("no_switch", TypeBoolean)),
	sig("XIRR", FamilyFinancial, TypeNumber, "Returns the internal rate of return for a schedule of cash flows", req("table", TypeTable), req("values", TypeExpression), req("dates", TypeExpression), opt("guess", TypeNumber)),
	sig("XNPV", FamilyFinancial, TypeNumber, "Returns the net present value for a schedule of cash flows", req("table", TypeTable), req("values", TypeExpression), req("dates", TypeExpression), req("rate", TypeNumber)),
	sig("YIELD", FamilyFinancial, TypeNumber, "Returns the yield of a security that pays periodic interest", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("rate", TypeNumber), req("pr", TypeNumber), req("redemption", TypeNumber), req("frequency", TypeInteger), opt("basis", TypeInteger)),
	sig("YIELDDISC", FamilyFinancial, TypeNumber, "Returns the annual yield of a discounted security", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("pr", TypeNumber), req("redemption", TypeNumber), opt("basis", TypeInteger)),
	sig("YIELDMAT", FamilyFinancial, TypeNumber, "Returns the annual yield of a security that pays interest at maturity", req("settlement", TypeDateTime), req("maturity", TypeDateTime), req("issue", TypeDateTime), req("rate", TypeNumber), req("pr", TypeNumber), opt("basis", TypeInteger)),
}
