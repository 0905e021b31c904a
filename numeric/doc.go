// Package numeric defines the arithmetic surface every numlab exercise is
// written against.
//
// An exercise is a generic function over E numeric.Number[E]; it receives a
// numeric.Field[E] to create constants and never touches float32/float64
// directly. Two families of types satisfy Number:
//
//   - numeric.Plain[T], native IEEE-754 arithmetic on float32 or float64.
//   - stochastic.Float[T], three randomly rounded samples that estimate how
//     many significant digits survive each operation.
//
// The same elimination, iteration or recurrence therefore runs unchanged
// under both arithmetics, which is the whole point of the labs: compare what
// the native result prints with what is actually significant.
//
//	f := numeric.PlainField[float64]{}
//	x := f.Const(61).Div(f.Const(11))
//	fmt.Println(x) // +5.545454545454545e+00
package numeric
