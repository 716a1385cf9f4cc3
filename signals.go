package xform

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for transformation events.
var (
	SignalTransformerCreated = capitan.NewSignal("xform.transformer.created", "Transformer instantiated")
	SignalOverwriteStart     = capitan.NewSignal("xform.overwrite.start", "Overwrite operation beginning")
	SignalOverwriteComplete  = capitan.NewSignal("xform.overwrite.complete", "Overwrite operation finished")
	SignalObfuscateStart     = capitan.NewSignal("xform.obfuscate.start", "Obfuscate operation beginning")
	SignalObfuscateComplete  = capitan.NewSignal("xform.obfuscate.complete", "Obfuscate operation finished")
	SignalMaskStart          = capitan.NewSignal("xform.mask.start", "Mask operation beginning")
	SignalMaskComplete       = capitan.NewSignal("xform.mask.complete", "Mask operation finished")
)

// Keys for typed event data.
var (
	KeyOperation = capitan.NewStringKey("operation")
	KeyPath      = capitan.NewStringKey("path")
	KeyKind      = capitan.NewStringKey("kind")
	KeyAlgorithm = capitan.NewStringKey("algorithm")
	KeySize      = capitan.NewIntKey("size")
	KeyDuration  = capitan.NewDurationKey("duration")
	KeyError     = capitan.NewErrorKey("error")
)

// emitTransformerCreated emits an event when a transformer is created.
func emitTransformerCreated(ctx context.Context, algo HashAlgo) {
	capitan.Emit(ctx, SignalTransformerCreated,
		KeyAlgorithm.Field(string(algo)),
	)
}

// emitStart emits the start signal for op.
func emitStart(ctx context.Context, op Operation, path string) {
	fields := []capitan.Field{
		KeyOperation.Field(string(op)),
		KeyPath.Field(path),
	}
	switch op {
	case OpObfuscate:
		capitan.Emit(ctx, SignalObfuscateStart, fields...)
	case OpMask:
		capitan.Emit(ctx, SignalMaskStart, fields...)
	default:
		capitan.Emit(ctx, SignalOverwriteStart, fields...)
	}
}

// emitComplete emits the completion signal for op. Failures are emitted
// at error severity.
func emitComplete(ctx context.Context, op Operation, path string, kind Kind, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyOperation.Field(string(op)),
		KeyPath.Field(path),
		KeyKind.Field(string(kind)),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}

	sig := SignalOverwriteComplete
	switch op {
	case OpObfuscate:
		sig = SignalObfuscateComplete
	case OpMask:
		sig = SignalMaskComplete
	}

	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, sig, fields...)
	} else {
		capitan.Emit(ctx, sig, fields...)
	}
}
