// Copyright (c) 2014-2016 The btcsuite developers
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

const (
	// mainPowLimitBits is the compact form of mainPowLimit.
	mainPowLimitBits uint32 = 0x1e0fffff

	// genesisBits is the difficulty of the main and test genesis blocks.
	genesisBits uint32 = 0x1e0ffff0 // 00000ffff0000000000000000000000000000000000000000000000000000000

	mainSporkPubKey = "0440122819daf62ad5de1467013d72c9b909124346c317e2411f16e5a7675ecbd543fe0a3344d940d789b9b6f3440002a5b29e694827820fd14630bb454076ef96"
)

// mainPowLimit is the highest proof of work value a block can have for the
// main network: 00000fffff000000000000000000000000000000000000000000000000000000.
func mainPowLimit() *big.Int {
	return hexToBig("00000fffff000000000000000000000000000000000000000000000000000000")
}

// MainNetParams returns the network parameters for the main Energi network.
func MainNetParams() Params {
	const (
		subsidyBackbone    = 228000000
		subsidyMiners      = 228000000
		subsidyMasternodes = 914000000
		superblockCycle    = 20160 // every 14 days
		regularBudget      = 18400000000000
	)

	genesisHash := newHashFromStr("00000865c697c524ba140d0e78454d6a8b2330f9adef2d170f58f607f0a56521")

	return Params{
		Name:        MainNetName,
		Net:         wire.MainNet,
		DefaultPort: "9797",
		RPCPort:     "9796",
		DataDirName: "",
		DNSSeeds: []DNSSeed{
			{Name: "energi.network", Host: "dnsseed.energi.network"},
		},

		AlertPubKey:         hexToBytes("048cd9adbefe1ca8435de5372e2725027e56f959fb979f5252c7d2a51de2f5251c10d55ad632e8c217d086b7b517ccfa934d5af693f354a0ab58bce23c963df5fc"),
		SporkPubKey:         mainSporkPubKey,
		MaxTipAge:           6 * time.Hour,
		DelayGetHeadersTime: 24 * time.Hour,
		PruneAfterHeight:    100000,

		Consensus: ConsensusParams{
			BackboneScript: txscript.MustPayToScriptHashHex("b051bdceb44b28bb36ef2add5ec07ccbc64708c2"),

			BlockSubsidy:            subsidyBackbone + subsidyMiners + subsidyMasternodes,
			BlockSubsidyBackbone:    subsidyBackbone,
			BlockSubsidyMiners:      subsidyMiners,
			BlockSubsidyMasternodes: subsidyMasternodes,

			SuperblockCycle:            superblockCycle,
			RegularTreasuryBudget:      regularBudget,
			SpecialTreasuryBudget:      400000000000000 + regularBudget, // 4 million extra coins
			SpecialTreasuryBudgetBlock: superblockCycle * 2,

			MasternodePaymentsStartBlock:   216000, // 150 days after genesis
			MasternodeMinimumConfirmations: 15,
			InstantSendKeepLock:            24,

			BudgetProposalEstablishingTime: 24 * time.Hour,
			GovernanceMinQuorum:            7,
			GovernanceFilterElements:       20000,

			MajorityEnforceBlockUpgrade: 750,
			MajorityRejectBlockOutdated: 950,
			MajorityWindow:              1000,

			PowLimit:                 mainPowLimit(),
			PowLimitBits:             mainPowLimitBits,
			TargetTimespan:           24 * time.Hour,
			TargetTimePerBlock:       time.Minute,
			AllowMinDifficultyBlocks: false,
			NoRetargeting:            false,

			// The miner confirmation window is defined as:
			//   target proof of work timespan / target proof of work spacing
			RuleChangeActivationThreshold: 1916, // 95% of MinerConfirmationWindow
			MinerConfirmationWindow:       2016,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					Name:       "testdummy",
					BitNumber:  28,
					StartTime:  1199145601, // January 1, 2008 UTC
					ExpireTime: 1230767999, // December 31, 2008 UTC
				},
				DeploymentCSV: {
					Name:       "csv",
					BitNumber:  0,
					StartTime:  1486252800, // Feb 5th, 2017
					ExpireTime: 1517788800, // Feb 5th, 2018
				},
				DeploymentDIP0001: {
					Name:       "dip0001",
					BitNumber:  1,
					StartTime:  1508025600, // Oct 15th, 2017
					ExpireTime: 1539561600, // Oct 15th, 2018
					WindowSize: 4032,
					Threshold:  3226, // 80% of 4032
				},
			},

			MinimumChainWork: new(big.Int),
			AssumeValid:      chainhash.Hash{},
		},

		Genesis:                   newGenesisOpts(1523387128, 32667859, genesisBits, subsidyBackbone+subsidyMiners),
		ExpectedGenesisHash:       *genesisHash,
		ExpectedGenesisMerkleRoot: *newHashFromStr("ce737517317ef573bb17f34c49e10fa30357983f29821f129a99fe3cb90e34c4"),

		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{Height: 0, Hash: genesisHash},
			},
			LastCheckpointTime: 1523387128,
			TxCount:            0,
			TxPerDay:           0,
		},

		PubKeyHashAddrID: 33,  // starts with E
		ScriptHashAddrID: 53,  // starts with N
		PrivateKeyID:     106, // starts with G or H

		HDPublicKeyID:  [4]byte{0x03, 0xb8, 0xc8, 0x56},
		HDPrivateKeyID: [4]byte{0xd7, 0xdc, 0x6e, 0x9f},
		HDCoinType:     5,

		MiningRequiresPeers:      true,
		DefaultConsistencyChecks: false,
		RequireStandard:          true,
		MineBlocksOnDemand:       false,

		PoolMaxTransactions:        3,
		FulfilledRequestExpireTime: time.Hour,
	}
}
