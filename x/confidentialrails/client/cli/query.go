package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hikari-chain/confidential-rails/x/confidentialrails/types"
)

// GetQueryCmd returns the confidentialrails module's query subcommand
// tree, mirroring the teacher's client/cli/query.go cobra-root pattern.
func GetQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      fmt.Sprintf("Querying commands for the %s module", types.ModuleName),
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       func(cmd *cobra.Command, args []string) error { return cmd.Help() },
	}

	cmd.AddCommand(
		CmdShowRail(),
		CmdShowVault(),
		CmdShowBalance(),
		CmdShowNullifier(),
		CmdShowHandshake(),
		CmdShowDepositRecord(),
		CmdShowTransferRecord(),
		CmdShowNativeVaultBalance(),
	)
	return cmd
}

// CmdShowRail builds the `show-rail` query subcommand.
func CmdShowRail() *cobra.Command {
	return &cobra.Command{
		Use:   "show-rail [rail-hex]",
		Short: "Show a rail's state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			r, found := KeeperFromCmd(cmd).GetRail(SDKContextFromCmd(cmd), rail)
			if !found {
				return types.ErrInvalidRail
			}
			cmd.Printf("authority=%x institution_type=%d compliance_level=%d sealed=%v active=%v paused=%v total_handshakes=%d version=%d\n",
				r.Authority, r.InstitutionType, r.ComplianceLevel, r.Sealed, r.Active, r.Paused, r.TotalHandshakes, r.Version)
			return nil
		},
	}
}

// CmdShowVault builds the `show-vault` query subcommand.
func CmdShowVault() *cobra.Command {
	return &cobra.Command{
		Use:   "show-vault [rail-hex]",
		Short: "Show a rail's ZkVault bookkeeping state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			v, found := KeeperFromCmd(cmd).GetZkVault(SDKContextFromCmd(cmd), rail)
			if !found {
				return types.ErrNotFound
			}
			cmd.Printf("rail=%x elgamal_pubkey=%x balance_commitment=%x deposit_count=%d token_deposit_count=%d\n",
				v.Rail, v.ElgamalPubkey, v.BalanceCommitment, v.DepositCount, v.TokenDepositCount)
			return nil
		},
	}
}

// CmdShowNullifier builds the `show-nullifier` query subcommand.
func CmdShowNullifier() *cobra.Command {
	return &cobra.Command{
		Use:   "show-nullifier [rail-hex] [nullifier-hash-hex]",
		Short: "Show a nullifier's spent status for a rail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			nullifierHash, err := parseHash32(args[1])
			if err != nil {
				return err
			}
			n, found := KeeperFromCmd(cmd).GetNullifier(SDKContextFromCmd(cmd), rail, nullifierHash)
			if !found {
				return types.ErrNotFound
			}
			cmd.Printf("rail=%x nullifier_hash=%x spent=%v spent_at=%d\n",
				n.Rail, n.NullifierHash, n.Spent, n.SpentAt)
			return nil
		},
	}
}

// CmdShowHandshake builds the `show-handshake` query subcommand.
func CmdShowHandshake() *cobra.Command {
	return &cobra.Command{
		Use:   "show-handshake [rail-hex] [nullifier-hash-hex]",
		Short: "Show a handshake admission record for a rail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			nullifierHash, err := parseHash32(args[1])
			if err != nil {
				return err
			}
			h, found := KeeperFromCmd(cmd).GetHandshake(SDKContextFromCmd(cmd), rail, nullifierHash)
			if !found {
				return types.ErrNotFound
			}
			cmd.Printf("rail=%x commitment=%x nullifier_hash=%x active=%v created_at=%d revoked_at=%d\n",
				h.Rail, h.Commitment, h.NullifierHash, h.Active, h.CreatedAt, h.RevokedAt)
			return nil
		},
	}
}

// CmdShowBalance builds the `show-balance` query subcommand, a pure read
// probe (no side effects) over a rail's per-asset encrypted balance.
func CmdShowBalance() *cobra.Command {
	return &cobra.Command{
		Use:   "show-balance [rail-hex] [asset-key-hex]",
		Short: "Show a rail's encrypted balance for an asset (native asset key is all-zero)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			assetKey, err := parseHash32(args[1])
			if err != nil {
				return err
			}
			asset, found := KeeperFromCmd(cmd).GetBalance(SDKContextFromCmd(cmd), rail, assetKey)
			if !found {
				return types.ErrInvalidAssetState
			}
			cmd.Printf("commitment=%x encrypted_balance=%x updated_at=%d\n",
				asset.BalanceCommitment, asset.EncryptedBalance, asset.UpdatedAt)
			return nil
		},
	}
}

// CmdShowDepositRecord builds the `show-deposit` query subcommand.
func CmdShowDepositRecord() *cobra.Command {
	return &cobra.Command{
		Use:   "show-deposit [deposit-id-hex]",
		Short: "Show a native deposit record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			record, found := KeeperFromCmd(cmd).GetDepositRecord(SDKContextFromCmd(cmd), id)
			if !found {
				return types.ErrNotFound
			}
			cmd.Printf("rail=%x sender=%x commitment=%x withdrawn=%v created_at=%d\n",
				record.Rail, record.Sender, record.Commitment, record.IsWithdrawn, record.CreatedAt)
			return nil
		},
	}
}

// CmdShowTransferRecord builds the `show-transfer` query subcommand.
func CmdShowTransferRecord() *cobra.Command {
	return &cobra.Command{
		Use:   "show-transfer [transfer-id-hex]",
		Short: "Show a confidential transfer record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			record, found := KeeperFromCmd(cmd).GetTransferRecord(SDKContextFromCmd(cmd), id)
			if !found {
				return types.ErrNotFound
			}
			cmd.Printf("sender_rail=%x receiver_rail=%x is_token=%v proof_hash=%x created_at=%d\n",
				record.SenderRail, record.ReceiverRail, record.IsToken, record.ProofHash, record.CreatedAt)
			return nil
		},
	}
}

// CmdShowNativeVaultBalance builds the `show-native-vault-balance` query
// subcommand, exposing a rail's program-owned native vault total.
func CmdShowNativeVaultBalance() *cobra.Command {
	return &cobra.Command{
		Use:   "show-native-vault-balance [rail-hex]",
		Short: "Show a rail's program-owned native vault balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rail, err := parseAccountID(args[0])
			if err != nil {
				return err
			}
			balance := KeeperFromCmd(cmd).NativeVaultBalance(SDKContextFromCmd(cmd), rail)
			cmd.Println(hex.EncodeToString(uint64ToBytes(balance)))
			return nil
		},
	}
}

func uint64ToBytes(v uint64) []byte {
	b := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
	return b
}
