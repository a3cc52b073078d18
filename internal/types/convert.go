package types

// ConvertResult describes the outcome of a conversion check (spec section
// 4.1, check_convert).
type ConvertResult struct {
	OK    bool
	// RuntimeOp is true when a runtime conversion instruction must be
	// inserted (kept for future codegen; never required to make this
	// decision today since codegen is out of scope).
	RuntimeOp bool
	Reason    string // populated when !OK, for diagnostic messages
}

func ok(runtimeOp bool) ConvertResult { return ConvertResult{OK: true, RuntimeOp: runtimeOp} }
func fail(reason string) ConvertResult { return ConvertResult{OK: false, Reason: reason} }

// CheckConvert implements the scalar conversion table in spec section 3.2.
// When either side is an array type it delegates to checkArrayConvert,
// which resolves the target shape with ResolveShape (section 3.3/4.8) and
// then checks the element types by recursing back into the scalar table.
func CheckConvert(source, target *Type, explicit bool) ConvertResult {
	if source.IsUnknown() || target.IsUnknown() {
		return ok(false) // already reported; don't cascade
	}

	if Equal(source, target) {
		return ok(false)
	}

	if source.IsArray() || target.IsArray() {
		return checkArrayConvert(source, target, explicit)
	}

	// bool / string never mix with numerics or with each other's opposite.
	if source.IsBool() || target.IsBool() {
		if source.IsBool() && target.IsBool() {
			return ok(false)
		}
		return fail("bool cannot convert to or from a non-bool type")
	}
	if source.IsString() || target.IsString() {
		if source.IsString() && target.IsString() {
			return ok(false)
		}
		return fail("string cannot convert to or from a non-string type")
	}

	if !source.IsNumeric() || !target.IsNumeric() {
		return fail("unsupported conversion")
	}

	switch source.Kind {
	case KindComptimeInt:
		// implicit to any numeric concrete (rule 2); identity already
		// handled above for comptime_int -> comptime_int.
		return ok(false)
	case KindComptimeFloat:
		if target.IsFloat() {
			return ok(false) // implicit
		}
		// explicit truncation toward zero into an integer type
		if explicit {
			return ok(true)
		}
		return fail("comptime_float requires an explicit conversion to an integer type")
	default:
		// concrete -> different concrete: always explicit, even widening.
		if explicit {
			return ok(true)
		}
		return fail("mismatched concrete types require an explicit conversion")
	}
}

func checkArrayConvert(source, target *Type, explicit bool) ConvertResult {
	if !source.IsArray() || !target.IsArray() {
		return fail("cannot convert between an array and a non-array type")
	}
	if !explicit {
		// Comptime arrays materialize implicitly against a target context;
		// that path is handled by the semantic package's
		// materializeComptimeArray, not here. A bare
		// implicit conversion between two array types is never legal.
		if source.Kind == KindComptimeArray {
			return ok(false)
		}
		return fail("array conversions require the explicit `:[shape]T` syntax")
	}

	shape, err := ResolveShape(source, target.Dims)
	if err != "" {
		return fail(err)
	}
	_ = shape

	elemResult := CheckConvert(source.Elem, target.Elem, true)
	if !elemResult.OK {
		return fail("element type " + elemResult.Reason)
	}
	return ok(true)
}

// UnifyLiteral implements spec section 4.1's unify_literal: given an
// optional target type and the literal's own (always comptime) type,
// decide the literal expression's resolved type.
func UnifyLiteral(target *Type, literal *Type) (resolved *Type, ok bool) {
	if target == nil {
		return literal, true
	}
	if target.IsUnknown() {
		return literal, true
	}
	if literal.Kind == KindComptimeInt {
		if target.IsNumeric() {
			return target, true
		}
		return literal, false
	}
	if literal.Kind == KindComptimeFloat {
		if target.IsFloat() {
			return target, true
		}
		// integer context: the expression analyzer (unifyLiteralOrError)
		// turns this into an UnsafeImplicitConversion diagnostic rather than silently
		// truncating.
		return literal, false
	}
	return literal, Equal(target, literal)
}

// WidenBinary implements the binary operand promotion rule used by +, -, *,
// %, and the comparison operators (spec section 4.4, rules 2-5): when both
// operands are comptime numeric, promote int+int->int, int+float/float+int
// ->float, float+float->float. Returns ok=false when the two operands don't
// form a valid comptime pair (caller falls through to the mixed-concrete /
// concrete-adapts-comptime cases).
func WidenBinary(lhs, rhs *Type) (result *Type, ok bool) {
	if lhs.Kind != KindComptimeInt && lhs.Kind != KindComptimeFloat {
		return nil, false
	}
	if rhs.Kind != KindComptimeInt && rhs.Kind != KindComptimeFloat {
		return nil, false
	}
	if lhs.Kind == KindComptimeFloat || rhs.Kind == KindComptimeFloat {
		return ComptimeFloat, true
	}
	return ComptimeInt, true
}

// ResolveShape implements the shape algebra from spec sections 3.3, 4.8 and
// the open-question resolution in section 9: given a source array type and
// a target dimension list (which may contain at most one inferred `_`),
// compute the concrete target shape or return a non-empty reason string
// explaining why it can't be resolved.
func ResolveShape(source *Type, targetDims []Dim) (resolved []Dim, reason string) {
	total, haveTotal := source.ElementCount()
	if !haveTotal {
		// Source itself has an inferred dimension (e.g. a [_]T parameter
		// inside its own callee); shape checking is deferred to the
		// concrete call-site specialization that resolves it first.
		return nil, "source array shape is not fully known"
	}

	inferredIdx := -1
	knownProduct := 1
	for i, d := range targetDims {
		if d.Inferred {
			if inferredIdx != -1 {
				return nil, "MultiInferredDimensionAmbiguous"
			}
			inferredIdx = i
			continue
		}
		if d.Size <= 0 {
			return nil, "array dimension must be a positive integer"
		}
		knownProduct *= d.Size
	}

	resolved = make([]Dim, len(targetDims))
	copy(resolved, targetDims)

	if inferredIdx == -1 {
		if knownProduct != total {
			return nil, "ArrayShapeMismatch"
		}
		return resolved, ""
	}

	if knownProduct == 0 || total%knownProduct != 0 {
		return nil, "ArrayShapeMismatch"
	}
	resolved[inferredIdx] = FixedDim(total / knownProduct)
	return resolved, ""
}
