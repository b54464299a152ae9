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
	// regressionPowLimitBits is the compact form of the regression test
	// network limit, 7fffff0000000000000000000000000000000000000000000000000000000000.
	regressionPowLimitBits uint32 = 0x207fffff

	// regressionNeverExpires keeps regtest deployments open.
	regressionNeverExpires = 999999999999
)

// regressionPowLimit is the highest proof of work value a block can have for
// the regression test network.  It is the value 2^255 - 1.
func regressionPowLimit() *big.Int {
	return new(big.Int).Sub(new(big.Int).Lsh(bigOne, 255), bigOne)
}

// RegressionNetParams returns the network parameters for the regression test
// network.  Not to be confused with the test network, this network is
// sometimes simply called "regtest".
func RegressionNetParams() Params {
	const (
		subsidyBackbone    = 228000000
		subsidyMiners      = 228000000
		subsidyMasternodes = 914000000
		superblockCycle    = 60
		regularBudget      = 18400000000000
	)

	// Block hash under wire.DoubleSHA256Hasher; it changes with the BlockHasher.
	genesisHash := newHashFromStr("1a0205c133c91e2a3804b95684964794dc2865ba355e8ff4abb2fe62da7e7268")

	return Params{
		Name:        RegressionName,
		Net:         wire.RegTest,
		DefaultPort: "39797",
		RPCPort:     "39796",
		DataDirName: "regtest",
		DNSSeeds:    []DNSSeed{},

		SporkPubKey:         testSporkPubKey,
		MaxTipAge:           6 * time.Hour,
		DelayGetHeadersTime: 0,
		PruneAfterHeight:    1000,

		Consensus: ConsensusParams{
			BackboneScript: txscript.MustPayToScriptHashHex("b27ae40d9e9917130210894e50e99f26968faaa4"),

			BlockSubsidy:            subsidyBackbone + subsidyMiners + subsidyMasternodes,
			BlockSubsidyBackbone:    subsidyBackbone,
			BlockSubsidyMiners:      subsidyMiners,
			BlockSubsidyMasternodes: subsidyMasternodes,

			SuperblockCycle:            superblockCycle,
			RegularTreasuryBudget:      regularBudget,
			SpecialTreasuryBudget:      400000000000000 + regularBudget,
			SpecialTreasuryBudgetBlock: superblockCycle * 50,

			MasternodePaymentsStartBlock:   240,
			MasternodeMinimumConfirmations: 1,
			InstantSendKeepLock:            6,

			BudgetProposalEstablishingTime: 20 * time.Minute,
			GovernanceMinQuorum:            1,
			GovernanceFilterElements:       100,

			MajorityEnforceBlockUpgrade: 750,
			MajorityRejectBlockOutdated: 950,
			MajorityWindow:              1000,

			PowLimit:                 regressionPowLimit(),
			PowLimitBits:             regressionPowLimitBits,
			TargetTimespan:           24 * time.Hour,
			TargetTimePerBlock:       time.Minute,
			AllowMinDifficultyBlocks: true,
			NoRetargeting:            true,

			RuleChangeActivationThreshold: 108, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       144,
			Deployments: [DefinedDeployments]ConsensusDeployment{
				DeploymentTestDummy: {
					Name:       "testdummy",
					BitNumber:  28,
					StartTime:  0,
					ExpireTime: regressionNeverExpires,
				},
				DeploymentCSV: {
					Name:       "csv",
					BitNumber:  0,
					StartTime:  0,
					ExpireTime: regressionNeverExpires,
				},
				DeploymentDIP0001: {
					Name:       "dip0001",
					BitNumber:  1,
					StartTime:  0,
					ExpireTime: regressionNeverExpires,
				},
			},

			MinimumChainWork: new(big.Int),
			AssumeValid:      chainhash.Hash{},
		},

		Genesis:                   newGenesisOpts(1524279488, 12, regressionPowLimitBits, subsidyBackbone+subsidyMiners),
		ExpectedGenesisHash:       *genesisHash,
		ExpectedGenesisMerkleRoot: *newHashFromStr("34e077f3b96691e4f1aea04061ead361fc4f5b45250513199f46f352b7e4669e"),

		Checkpoints: CheckpointData{
			Checkpoints: []Checkpoint{
				{Height: 0, Hash: genesisHash},
			},
		},

		PubKeyHashAddrID: 127,
		ScriptHashAddrID: 19,
		PrivateKeyID:     239,

		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf},
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94},
		HDCoinType:     1,

		MiningRequiresPeers:      false,
		DefaultConsistencyChecks: true,
		RequireStandard:          false,
		MineBlocksOnDemand:       true,

		PoolMaxTransactions:        3,
		FulfilledRequestExpireTime: 5 * time.Minute,
	}
}
