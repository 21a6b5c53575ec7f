package graph

// Leaf creates a node holding caller-supplied data with no producing
// operation. requiresGrad is fixed at construction and never propagated
// retroactively: changing it after dependent nodes have been built does not
// affect those nodes' own requiresGrad.
func Leaf[E Element[E]](value E, requiresGrad bool) *Value[E] {
	v := &Value[E]{
		id:           newID(),
		op:           OpLeaf,
		requiresGrad: requiresGrad,
	}
	v.setData(value)

	return v
}

// Add builds a node computing a + b, broadcasting shapes the way the
// underlying Element type defines.
func Add[E Element[E]](a, b *Value[E]) *Value[E] {
	v := &Value[E]{
		id:           newID(),
		op:           OpAdd,
		deps:         []*Value[E]{a, b},
		requiresGrad: a.requiresGrad || b.requiresGrad,
	}

	v.backward = func(outGrad E) ([]E, error) {
		aData, err := a.MustData()
		if err != nil {
			return nil, err
		}

		bData, err := b.MustData()
		if err != nil {
			return nil, err
		}

		gradA, err := unbroadcast[E](outGrad, aData.Shape())
		if err != nil {
			return nil, err
		}

		gradB, err := unbroadcast[E](outGrad, bData.Shape())
		if err != nil {
			return nil, err
		}

		return []E{gradA, gradB}, nil
	}

	return v
}

// Sub builds a node computing a - b.
func Sub[E Element[E]](a, b *Value[E]) *Value[E] {
	v := &Value[E]{
		id:           newID(),
		op:           OpSub,
		deps:         []*Value[E]{a, b},
		requiresGrad: a.requiresGrad || b.requiresGrad,
	}

	v.backward = func(outGrad E) ([]E, error) {
		aData, err := a.MustData()
		if err != nil {
			return nil, err
		}

		bData, err := b.MustData()
		if err != nil {
			return nil, err
		}

		negGrad, err := outGrad.Neg()
		if err != nil {
			return nil, err
		}

		gradA, err := unbroadcast[E](outGrad, aData.Shape())
		if err != nil {
			return nil, err
		}

		gradB, err := unbroadcast[E](negGrad, bData.Shape())
		if err != nil {
			return nil, err
		}

		return []E{gradA, gradB}, nil
	}

	return v
}

// Mul builds a node computing a * b (elementwise, broadcasting).
func Mul[E Element[E]](a, b *Value[E]) *Value[E] {
	v := &Value[E]{
		id:           newID(),
		op:           OpMul,
		deps:         []*Value[E]{a, b},
		requiresGrad: a.requiresGrad || b.requiresGrad,
	}

	v.backward = func(outGrad E) ([]E, error) {
		aData, err := a.MustData()
		if err != nil {
			return nil, err
		}

		bData, err := b.MustData()
		if err != nil {
			return nil, err
		}

		rawGradA, err := outGrad.Mul(bData)
		if err != nil {
			return nil, err
		}

		rawGradB, err := outGrad.Mul(aData)
		if err != nil {
			return nil, err
		}

		gradA, err := unbroadcast[E](rawGradA, aData.Shape())
		if err != nil {
			return nil, err
		}

		gradB, err := unbroadcast[E](rawGradB, bData.Shape())
		if err != nil {
			return nil, err
		}

		return []E{gradA, gradB}, nil
	}

	return v
}

// Div builds a node computing a / b (elementwise, broadcasting).
func Div[E Element[E]](a, b *Value[E]) *Value[E] {
	v := &Value[E]{
		id:           newID(),
		op:           OpDiv,
		deps:         []*Value[E]{a, b},
		requiresGrad: a.requiresGrad || b.requiresGrad,
	}

	v.backward = func(outGrad E) ([]E, error) {
		aData, err := a.MustData()
		if err != nil {
			return nil, err
		}

		bData, err := b.MustData()
		if err != nil {
			return nil, err
		}

		rawGradA, err := outGrad.Div(bData)
		if err != nil {
			return nil, err
		}

		bSquared, err := bData.Mul(bData)
		if err != nil {
			return nil, err
		}

		aOverBSquared, err := aData.Div(bSquared)
		if err != nil {
			return nil, err
		}

		scaled, err := outGrad.Mul(aOverBSquared)
		if err != nil {
			return nil, err
		}

		rawGradB, err := scaled.Neg()
		if err != nil {
			return nil, err
		}

		gradA, err := unbroadcast[E](rawGradA, aData.Shape())
		if err != nil {
			return nil, err
		}

		gradB, err := unbroadcast[E](rawGradB, bData.Shape())
		if err != nil {
			return nil, err
		}

		return []E{gradA, gradB}, nil
	}

	return v
}

// Neg builds a node computing -a.
func Neg[E Element[E]](a *Value[E]) *Value[E] {
	v := &Value[E]{
		id:           newID(),
		op:           OpNeg,
		deps:         []*Value[E]{a},
		requiresGrad: a.requiresGrad,
	}

	v.backward = func(outGrad E) ([]E, error) {
		gradA, err := outGrad.Neg()
		if err != nil {
			return nil, err
		}

		return []E{gradA}, nil
	}

	return v
}

// Dot builds a node computing the contraction of a and b: matrix product for
// rank-2 tensor elements, plain multiplication for scalar elements (Dot
// degenerates to Mul when Transpose is the identity). Dot does not
// broadcast; operand shapes must already be compatible for the underlying
// Element's Dot implementation.
func Dot[E Element[E]](a, b *Value[E]) *Value[E] {
	v := &Value[E]{
		id:           newID(),
		op:           OpDot,
		deps:         []*Value[E]{a, b},
		requiresGrad: a.requiresGrad || b.requiresGrad,
	}

	v.backward = func(outGrad E) ([]E, error) {
		aData, err := a.MustData()
		if err != nil {
			return nil, err
		}

		bData, err := b.MustData()
		if err != nil {
			return nil, err
		}

		bT, err := bData.Transpose()
		if err != nil {
			return nil, err
		}

		aT, err := aData.Transpose()
		if err != nil {
			return nil, err
		}

		gradA, err := outGrad.Dot(bT)
		if err != nil {
			return nil, err
		}

		gradB, err := aT.Dot(outGrad)
		if err != nil {
			return nil, err
		}

		return []E{gradA, gradB}, nil
	}

	return v
}
