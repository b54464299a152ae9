// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"gitlab.com/energi/energid/txscript"
	"gitlab.com/energi/energid/types/chainhash"
	"gitlab.com/energi/energid/types/wire"
)

// testNet60xFactor scales the rewards and shortens the cycles of the fast
// test network.
const testNet60xFactor = 60

// TestNet60xParams returns the network parameters for the test network that
// runs 60 times faster than the main network. It is only registered when
// enabled in the configuration.
func TestNet60xParams() Params {
	const (
		subsidyBackbone    = 228000000 * testNet60xFactor
		subsidyMiners      = 228000000 * testNet60xFactor
		subsidyMasternodes = 914000000 * testNet60xFactor
		superblockCycle    = 60 // every hour
		regularBudget      = 18400000000000 * testNet60xFactor
	)

	genesisHash := newHashFromStr("00000bbb002e0d35bccd7bba77e98dbfccc7d19a8b6c99cb99f233412f1695ae")

	return Params{
		Name:        TestNet60xName,
		Net:         wire.TestNet60x,
		DefaultPort: "29797",
		RPCPort:     "29796",
		DataDirName: "testnet60x1",
		DNSSeeds: []DNSSeed{
			{Name: "test60x.energi.network", Host: "dnsseed.test60x.energi.network"},
		},

		AlertPubKey:         hexToBytes(testAlertPubKey),
		SporkPubKey:         testSporkPubKey,
		MaxTipAge:           0x7fffffff * time.Second,
		DelayGetHeadersTime: 24 * time.Hour,
		PruneAfterHeight:    1000,

		Consensus: ConsensusParams{
			BackboneScript: txscript.MustPayToPubKeyHashHex(testBackboneHash),

			BlockSubsidy:            subsidyBackbone + subsidyMiners + subsidyMasternodes,
			BlockSubsidyBackbone:    subsidyBackbone,
			BlockSubsidyMiners:      subsidyMiners,
			BlockSubsidyMasternodes: subsidyMasternodes,

			SuperblockCycle:            superblockCycle,
			RegularTreasuryBudget:      regularBudget,
			SpecialTreasuryBudget:      (400000000000000 + regularBudget) * testNet60xFactor,
			SpecialTreasuryBudgetBlock: superblockCycle * 50,

			MasternodePaymentsStartBlock:   216000 / testNet60xFactor,
			MasternodeMinimumConfirmations: 1,
			InstantSendKeepLock:            6,

			BudgetProposalEstablishingTime: 20 * time.Minute,
			GovernanceMinQuorum:            1,
			GovernanceFilterElements:       500,

			MajorityEnforceBlockUpgrade: 51,
			MajorityRejectBlockOutdated: 75,
			MajorityWindow:              100,

			PowLimit:                 mainPowLimit(),
			PowLimitBits:             mainPowLimitBits,
			TargetTimespan:           24 * time.Hour,
			TargetTimePerBlock:       time.Minute,
			AllowMinDifficultyBlocks: true,
			NoRetargeting:            false,

			RuleChangeActivationThreshold: 1512,
			MinerConfirmationWindow:       2016,
			Deployments:                   testDeployments(),

			MinimumChainWork: new(big.Int),
			AssumeValid:      chainhash.Hash{},
		},

		Genesis:                   newGenesisOpts(1523394408, 46080275, genesisBits, subsidyBackbone+subsidyMiners),
		ExpectedGenesisHash:       *genesisHash,
		ExpectedGenesisMerkleRoot: *newHashFromStr("1ee1b1a8bfb343ed27c4a5974a552adf1c22da7551a3a4f595aeb888b31b5a05"),

		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{Height: 0, Hash: genesisHash},
			},
			LastCheckpointTime: 1523394408,
		},

		PubKeyHashAddrID: 127,
		ScriptHashAddrID: 19,
		PrivateKeyID:     239,

		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
		HDCoinType:     1,

		PoolMaxTransactions:        3,
		FulfilledRequestExpireTime: 5 * time.Minute,
	}
}
