// Package operation defines named, pure computations and the registry that
// holds them.
//
// An [Entry] pairs a [Signature] (ordered, typed parameter list and return
// kind) with a [Func] that receives already-validated positional [Args]. A
// [Registry] is populated once at startup with [Registry.Register] or
// [Build] and is read-only afterwards; [Registry.Lookup] resolves entries by
// name and [Registry.List] yields their signatures in registration order.
//
// Failures are reported as [*Error] values carrying an [ErrorKind]. Use
// [errors.Is] with the per-kind sentinels ([ErrUnknownOperation],
// [ErrDuplicateOperation], ...) to branch on the kind.
package operation
