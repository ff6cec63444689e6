package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/keeper"
	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// GetTxCmd returns the confidentialrails module's tx subcommand tree,
// mirroring the teacher's client/cli/tx.go cobra-root pattern.
func GetTxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("%s transactions subcommands", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       func(cmd *cobra.Command, args []string) error { return cmd.Help() },
	}

	cmd.AddCommand(
		CmdInitializeRail(),
		CmdSealRail(),
		CmdPauseRail(),
		CmdUnpauseRail(),
		CmdDeactivateRail(),
		CmdCreateHandshake(),
		CmdRevokeHandshake(),
	)
	return cmd
}

func parseAccountID(s string) (types.AccountID, error) {
	var id types.AccountID
	b, err := hex.DecodeString(s)
	if err != nil {
		return id, err
	}
	if len(b) != len(id) {
		return id, fmt.Errorf("expected %d raw bytes, got %d", len(id), len(b))
	}
	copy(id[:], b)
	return id, nil
}

func parseHash32(s string) (types.Hash32, error) {
	var h types.Hash32
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	if len(b) != len(h) {
		return h, fmt.Errorf("expected %d raw bytes, got %d", len(h), len(b))
	}
	copy(h[:], b)
	return h, nil
}

// CmdInitializeRail builds the `initialize-rail` subcommand. Like every
// command in this package it operates against a local in-process Keeper
// via KeeperFromCmd (wired by cmd/confidentialrailsd); there is no transaction
// signing or broadcast here, since that is the host runtime's job
// (spec.md §1 "OUT OF SCOPE").
func CmdInitializeRail() *cobra.Command {
	return &cobra.Command{
		Use:   "initialize-rail [authority-hex] [institution-type] [compliance-level]",
		Short: "Initialize a rail for an authority holding at least one NORTH token",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			authority, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			var institutionType, complianceLevel uint8
			if _, err := fmt.Sscanf(args[1], "%d", &institutionType); err != nil {
				return err
			}
			if _, err := fmt.Sscanf(args[2], "%d", &complianceLevel); err != nil {
				return err
			}

			k := KeeperFromCmd(cmd)
			railID, err := k.InitializeRail(SDKContextFromCmd(cmd), authority, institutionType, complianceLevel)
			if err != nil {
				return err
			}
			cmd.Println(hex.EncodeToString(railID[:]))
			return nil
		},
	}
}

// CmdSealRail builds the `seal-rail` subcommand.
func CmdSealRail() *cobra.Command {
	return &cobra.Command{
		Use:   "seal-rail [rail-hex] [authority-hex] [audit-seal-hex]",
		Short: "Seal a rail, stamping its audit seal",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			authority, err := parseAccountID(args[1])
			if err != nil {
				return err
			}
			seal, err := parseHash32(args[2])
			if err != nil {
				return err
			}
			return KeeperFromCmd(cmd).SealRail(SDKContextFromCmd(cmd), rail, authority, seal)
		},
	}
}

// CmdPauseRail builds the `pause-rail` subcommand.
func CmdPauseRail() *cobra.Command {
	return &cobra.Command{
		Use:   "pause-rail [rail-hex] [authority-hex]",
		Short: "Pause an active rail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			authority, err := parseAccountID(args[1])
			if err != nil {
				return err
			}
			return KeeperFromCmd(cmd).PauseRail(SDKContextFromCmd(cmd), rail, authority)
		},
	}
}

// CmdUnpauseRail builds the `unpause-rail` subcommand.
func CmdUnpauseRail() *cobra.Command {
	return &cobra.Command{
		Use:   "unpause-rail [rail-hex] [authority-hex]",
		Short: "Unpause a paused rail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			authority, err := parseAccountID(args[1])
			if err != nil {
				return err
			}
			return KeeperFromCmd(cmd).UnpauseRail(SDKContextFromCmd(cmd), rail, authority)
		},
	}
}

// CmdDeactivateRail builds the `deactivate-rail` subcommand.
func CmdDeactivateRail() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate-rail [rail-hex] [authority-hex] [reason]",
		Short: "Irreversibly deactivate a rail",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			authority, err := parseAccountID(args[1])
			if err != nil {
				return err
			}
			var reason uint8
			if _, err := fmt.Sscanf(args[2], "%d", &reason); err != nil {
				return err
			}
			return KeeperFromCmd(cmd).DeactivateRail(SDKContextFromCmd(cmd), rail, authority, reason)
		},
	}
}

// CmdCreateHandshake builds the `create-handshake` subcommand.
func CmdCreateHandshake() *cobra.Command {
	return &cobra.Command{
		Use:   "create-handshake [rail-hex] [commitment-hex] [nullifier-hash-hex]",
		Short: "Admit a participant to a rail via a commitment/nullifier handshake",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			commitment, err := parseHash32(args[1])
			if err != nil {
				return err
			}
			nullifierHash, err := parseHash32(args[2])
			if err != nil {
				return err
			}
			return KeeperFromCmd(cmd).CreateHandshake(SDKContextFromCmd(cmd), rail, commitment, nullifierHash)
		},
	}
}

// CmdRevokeHandshake builds the `revoke-handshake` subcommand.
func CmdRevokeHandshake() *cobra.Command {
	return &cobra.Command{
		Use:   "revoke-handshake [rail-hex] [authority-hex] [nullifier-hash-hex]",
		Short: "Revoke a previously admitted handshake",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			authority, err := parseAccountID(args[1])
			if err != nil {
				return err
			}
			nullifierHash, err := parseHash32(args[2])
			if err != nil {
				return err
			}
			return KeeperFromCmd(cmd).RevokeHandshake(SDKContextFromCmd(cmd), rail, authority, nullifierHash)
		},
	}
}

// keeperContextKey is the cmd.Context() key CmdInitializeRail et al. use
// to reach the wired Keeper, set by cmd/confidentialrailsd before Execute.
type keeperContextKey struct{}

// KeeperFromCmd retrieves the Keeper stashed on the command's context.
func KeeperFromCmd(cmd *cobra.Command) *keeper.Keeper {
	k, _ := cmd.Context().Value(keeperContextKey{}).(*keeper.Keeper)
	return k
}

// WithKeeper installs the given Keeper and the sdk.Context it should
// operate against on cmd's context, for cmd/confidentialrailsd to call
// before Execute.
func WithKeeper(cmd *cobra.Command, k *keeper.Keeper, sdkCtx sdk.Context) {
	cmd.SetContext(contextWithKeeper(sdkCtx, k))
}
