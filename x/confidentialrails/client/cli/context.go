package cli

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

type sdkContextKey struct{}

// contextWithKeeper stashes both the Keeper and the sdk.Context it should
// operate against on a fresh context.Background(), rather than nesting
// context.WithValue on top of the sdk.Context itself — the keeper layer's
// sdk.UnwrapSDKContext expects to type-assert its argument directly to
// sdk.Context, which a further-wrapped value would no longer satisfy.
func contextWithKeeper(sdkCtx sdk.Context, v interface{}) context.Context {
	ctx := context.WithValue(context.Background(), keeperContextKey{}, v)
	return context.WithValue(ctx, sdkContextKey{}, sdkCtx)
}

// SDKContextFromCmd retrieves the sdk.Context a command should pass to
// Keeper methods.
func SDKContextFromCmd(cmd interface{ Context() context.Context }) sdk.Context {
	sdkCtx, _ := cmd.Context().Value(sdkContextKey{}).(sdk.Context)
	return sdkCtx
}
