package builder

var ErrNilConstructor = errNilConstructor
