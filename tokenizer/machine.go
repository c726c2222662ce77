package tokenizer

import (
	"context"

	"github.com/qmuntal/stateless"
)

// Machine builds a state machine equivalent to the scanner transition table.
// Triggers are [Class] values; guarded triggers expect the date flag as
// the only trigger argument:
//
//	sm := tokenizer.Machine()
//	_ = sm.Fire(tokenizer.Equals)
//	_ = sm.Fire(tokenizer.Delim, true) // stays in InValue
//
// The machine tracks states only, whether a character splits is answered by [Next].
func Machine() *stateless.StateMachine {
	sm := stateless.NewStateMachine(Plain)
	for _, s := range States() {
		cfg := sm.Configure(s)
		for _, c := range Classes() {
			if !Guarded(s, c) {
				next, _ := Next(s, c, false)
				permit(cfg, s, c, next)
				continue
			}
			dated, _ := Next(s, c, true)
			undated, _ := Next(s, c, false)
			permit(cfg, s, c, dated, isDated)
			permit(cfg, s, c, undated, notDated)
		}
	}
	return sm
}

func permit(cfg *stateless.StateConfiguration, from State, c Class, to State, guards ...stateless.GuardFunc) {
	if from == to {
		cfg.PermitReentry(c, guards...)
		return
	}
	cfg.Permit(c, to, guards...)
}

func isDated(_ context.Context, args ...any) bool {
	if len(args) == 0 {
		return false
	}
	dated, _ := args[0].(bool)
	return dated
}

func notDated(ctx context.Context, args ...any) bool { return !isDated(ctx, args...) }
