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
	testAlertPubKey = "04da7109a0215bf7bb19ecaf9e4295104142b4e03579473c1083ad44e8195a13394a8a7e51ca223fdbc5439420fd08963e491007beab68ac65c5b1c842c8635b37"
	testSporkPubKey = "044221353eb05b321b55f9b47dc90462066d6e09019e95b05d6603a117877fd34b13b34e8ed005379a9553ce7e719c44c658fd9c9acaae58a04c63cb8f7b5716db"

	testBackboneHash = "22af89cb590829ae00a927deb2efbf81954c6840"
)

// testDeployments are shared by the public test networks.
func testDeployments() [DefinedDeployments]ConsensusDeployment {
	return [DefinedDeployments]ConsensusDeployment{
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
			Name:      "dip0001",
			BitNumber: 1,
			// Never started on the test networks.
		},
	}
}

// TestNetParams returns the network parameters for the public test network.
func TestNetParams() Params {
	const (
		subsidyBackbone    = 228000000
		subsidyMiners      = 228000000
		subsidyMasternodes = 914000000
		superblockCycle    = 180
		regularBudget      = 18400000000000
	)

	genesisHash := newHashFromStr("0000036ba66d0b15138fdda1ebfd425bbd88ac775218735fe06410dd99f5c362")

	return Params{
		Name:        TestNetName,
		Net:         wire.TestNet,
		DefaultPort: "19797",
		RPCPort:     "19796",
		DataDirName: "testnet1",
		DNSSeeds: []DNSSeed{
			{Name: "test.energi.network", Host: "dnsseed.test.energi.network"},
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
			SpecialTreasuryBudget:      400000000000000 + regularBudget,
			SpecialTreasuryBudgetBlock: superblockCycle * 50,

			MasternodePaymentsStartBlock:   216000,
			MasternodeMinimumConfirmations: 1,
			InstantSendKeepLock:            6,

			BudgetProposalEstablishingTime: time.Hour,
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

			RuleChangeActivationThreshold: 1512, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       2016,
			Deployments:                   testDeployments(),

			MinimumChainWork: new(big.Int),
			AssumeValid:      chainhash.Hash{},
		},

		Genesis:                   newGenesisOpts(1523388977, 13531562, genesisBits, subsidyBackbone+subsidyMiners),
		ExpectedGenesisHash:       *genesisHash,
		ExpectedGenesisMerkleRoot: *newHashFromStr("ce737517317ef573bb17f34c49e10fa30357983f29821f129a99fe3cb90e34c4"),

		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{Height: 0, Hash: genesisHash},
			},
			LastCheckpointTime: 1523388977,
		},

		PubKeyHashAddrID: 127, // starts with t
		ScriptHashAddrID: 19,  // starts with 8 or 9
		PrivateKeyID:     239, // starts with 9 or c

		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDCoinType:     1,

		MiningRequiresPeers:      false,
		DefaultConsistencyChecks: false,
		RequireStandard:          false,
		MineBlocksOnDemand:       false,

		PoolMaxTransactions:        3,
		FulfilledRequestExpireTime: 5 * time.Minute,
	}
}
