package cmd

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"

	"github.com/tranvictor/contractkit/contract"
)

// positionManagers holds the position manager slots of one command run. The
// handles are resolved again through them before every use.
type positionManagers struct {
	v3     contract.Slot[*contract.PositionManager]
	v4     contract.Slot[*contract.ERC721]
	v3Seen contract.Seen
	v4Seen contract.Seen
}

func (pms *positionManagers) V3(a *app, acct contract.Account) *contract.PositionManager {
	return a.resolver.V3NFTPositionManagerContract(&pms.v3, &pms.v3Seen, acct, false, 0)
}

func (pms *positionManagers) V4(a *app, acct contract.Account) *contract.ERC721 {
	return a.resolver.V4NFTPositionManagerContract(&pms.v4, &pms.v4Seen, acct, false, 0)
}

func runPositions(ctx context.Context, a *app, args []string) error {
	acct, err := a.account()
	if err != nil {
		return err
	}
	owner := acct.Address
	if len(args) > 0 {
		if owner, err = parseAddress(args[0]); err != nil {
			return err
		}
	}
	if owner == (common.Address{}) {
		return fmt.Errorf("no owner given and no account connected, see contractkit connect")
	}

	pms := &positionManagers{}
	pm := pms.V3(a, acct)
	if pm == nil {
		return fmt.Errorf("no v3 position manager on %s", a.networkName(acct.ChainID))
	}

	ctx, cancel := a.timeout(ctx)
	defer cancel()

	stop := a.ui.Spinner(fmt.Sprintf("Reading positions of %s...", owner.Hex()))
	ids, err := pm.OwnedTokenIDs(ctx, owner)
	if err != nil {
		stop()
		return err
	}
	// positions of the same pool are grouped together
	groups := [][][]string{}
	index := map[[2]common.Address]int{}
	for _, id := range ids {
		pm = pms.V3(a, acct)
		p, err := pm.Positions(ctx, id)
		if err != nil {
			stop()
			return fmt.Errorf("position %s: %w", id, err)
		}
		key := [2]common.Address{p.Token0, p.Token1}
		gi, found := index[key]
		if !found {
			gi = len(groups)
			index[key] = gi
			groups = append(groups, [][]string{})
		}
		groups[gi] = append(groups[gi], []string{
			id.String(),
			p.Token0.Hex(),
			p.Token1.Hex(),
			p.Fee.String(),
			fmt.Sprintf("%s:%s", p.TickLower, p.TickUpper),
			p.Liquidity.String(),
			p.TokensOwed0.String(),
			p.TokensOwed1.String(),
		})
	}
	stop()

	a.ui.Section(fmt.Sprintf("Uniswap v3 positions on %s", a.networkName(pm.ChainID())))
	if len(ids) == 0 {
		a.ui.Info("%s has no v3 positions.", owner.Hex())
	} else {
		a.ui.TableWithGroups(
			[]string{"ID", "Token0", "Token1", "Fee", "Ticks", "Liquidity", "Owed0", "Owed1"},
			groups,
		)
	}

	v4 := pms.V4(a, acct)
	if v4 == nil {
		return nil
	}
	count, err := v4.BalanceOf(ctx, owner)
	if err != nil {
		a.ui.Warn("couldn't read v4 positions: %s", err)
		return nil
	}
	a.ui.Info("Uniswap v4 positions: %s", count)
	return nil
}

var positionsCmd = &cobra.Command{
	Use:   "positions [owner]",
	Short: "List the Uniswap liquidity positions of the owner, the connected account by default",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPositions(cmd.Context(), current, args)
	},
}

func init() {
	rootCmd.AddCommand(positionsCmd)
}
