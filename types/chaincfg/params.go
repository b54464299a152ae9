// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2021 The Energi Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"math/big"
	"time"

	"gitlab.com/energi/energid/nrgutil"
	"gitlab.com/energi/energid/txscript"
	"gitlab.com/energi/energid/types/chainhash"
	"gitlab.com/energi/energid/types/wire"
)

var (
	// bigOne is 1 represented as a big.Int.  It is defined here to avoid
	// the overhead of creating it multiple times.
	bigOne = big.NewInt(1)
)

// NetName identifies one of the known networks.
type NetName string

const (
	MainNetName    NetName = "main"
	TestNetName    NetName = "test"
	TestNet60xName NetName = "test60"
	RegressionName NetName = "regtest"
)

// String returns the name as used on the command line and in config files.
func (n NetName) String() string {
	if n == "" {
		return "unknown"
	}
	return string(n)
}

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointData holds the checkpoints of a network together with the
// statistics used to estimate verification progress.
type CheckpointData struct {
	Checkpoints []Checkpoint

	// LastCheckpointTime is the UNIX timestamp of the last checkpoint block.
	LastCheckpointTime int64

	// TxCount is the total number of transactions between genesis and the
	// last checkpoint.
	TxCount int64

	// TxPerDay is the estimated number of transactions per day after the
	// last checkpoint.
	TxPerDay float64
}

// LatestCheckpoint returns the checkpoint with the greatest height or nil
// when there are none.
func (d *CheckpointData) LatestCheckpoint() *Checkpoint {
	if len(d.Checkpoints) == 0 {
		return nil
	}
	latest := &d.Checkpoints[0]
	for i := range d.Checkpoints {
		if d.Checkpoints[i].Height > latest.Height {
			latest = &d.Checkpoints[i]
		}
	}
	return latest
}

// DNSSeed identifies a DNS seed.
type DNSSeed struct {
	// Name is a human readable label of the seed operator.
	Name string

	// Host defines the hostname of the seed.
	Host string
}

// ConsensusDeployment defines details related to a specific consensus rule
// change that is voted in.  This is part of BIP0009.
type ConsensusDeployment struct {
	// Name is the label used in logs and RPC replies.
	Name string

	// BitNumber defines the specific bit number within the block version
	// this particular soft-fork deployment refers to.
	BitNumber uint8

	// StartTime is the median block time after which voting on the
	// deployment starts.
	StartTime uint64

	// ExpireTime is the median block time after which the attempted
	// deployment expires.
	ExpireTime uint64

	// WindowSize overrides ConsensusParams.MinerConfirmationWindow when
	// non-zero.
	WindowSize uint32

	// Threshold overrides ConsensusParams.RuleChangeActivationThreshold when
	// non-zero.
	Threshold uint32
}

// Constants that define the deployment offset in the deployments field of the
// parameters for each deployment.  This is useful to be able to get the details
// of a specific deployment by name.
const (
	// DeploymentTestDummy defines the rule change deployment ID for testing
	// purposes.
	DeploymentTestDummy = iota

	// DeploymentCSV defines the rule change deployment ID for the CSV
	// soft-fork package. The CSV package includes the deployment of BIPS
	// 68, 112, and 113.
	DeploymentCSV

	// DeploymentDIP0001 defines the rule change deployment ID for the
	// larger blocks and lower fees upgrade.
	DeploymentDIP0001

	// NOTE: DefinedDeployments must always come last since it is used to
	// determine how many defined deployments there currently are.

	// DefinedDeployments is the number of currently defined deployments.
	DefinedDeployments
)

// ConsensusParams holds the consensus rules of a network.
type ConsensusParams struct {
	// BackboneScript receives the backbone part of every block subsidy.
	BackboneScript []byte

	// BlockSubsidy is the full reward of a block and is split into the
	// backbone, miner and masternode parts.
	BlockSubsidy            nrgutil.Amount
	BlockSubsidyBackbone    nrgutil.Amount
	BlockSubsidyMiners      nrgutil.Amount
	BlockSubsidyMasternodes nrgutil.Amount

	// Treasury superblocks.
	SuperblockCycle            int32
	RegularTreasuryBudget      nrgutil.Amount
	SpecialTreasuryBudget      nrgutil.Amount
	SpecialTreasuryBudgetBlock int32

	MasternodePaymentsStartBlock   int32
	MasternodeMinimumConfirmations int32
	InstantSendKeepLock            int32

	BudgetProposalEstablishingTime time.Duration
	GovernanceMinQuorum            int32
	GovernanceFilterElements       int32

	// Block version upgrade majorities within MajorityWindow blocks.
	MajorityEnforceBlockUpgrade int32
	MajorityRejectBlockOutdated int32
	MajorityWindow              int32

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// AllowMinDifficultyBlocks permits min difficulty blocks after a long
	// gap between blocks.
	AllowMinDifficultyBlocks bool

	// NoRetargeting disables difficulty adjustment.
	NoRetargeting bool

	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 95% for the main network and 75% for test networks.
	RuleChangeActivationThreshold uint32

	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	MinerConfirmationWindow uint32

	Deployments [DefinedDeployments]ConsensusDeployment

	// MinimumChainWork is the least amount of work a chain must have to be
	// considered during initial block download.
	MinimumChainWork *big.Int

	// AssumeValid is a block whose ancestors skip script verification.
	AssumeValid chainhash.Hash
}

// DeploymentWindow returns the confirmation window and threshold that apply
// to the deployment.
func (c *ConsensusParams) DeploymentWindow(id int) (window, threshold uint32) {
	window = c.MinerConfirmationWindow
	threshold = c.RuleChangeActivationThreshold

	d := c.Deployments[id]
	if d.WindowSize != 0 {
		window = d.WindowSize
	}
	if d.Threshold != 0 {
		threshold = d.Threshold
	}
	return window, threshold
}

// Params defines an Energi network by its parameters.  These parameters may
// be used by applications to differentiate networks as well as addresses and
// keys for one network from those intended for use on another network.
//
// A *Params returned by Registry.Register, Registry.Lookup or
// ActiveNet.Current is shared by every caller and must be treated as read
// only, including the values behind its pointers and slices (PowLimit,
// MinimumChainWork, Checkpoints, DNSSeeds, scripts and keys). Build a fresh
// value with one of the network functions to experiment with changes.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name NetName

	// Net defines the magic bytes used to identify the network.
	Net wire.EnergiNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort string

	// RPCPort defines the default RPC port for the network.
	RPCPort string

	// DataDirName is the sub-directory of the data dir holding this
	// network's files. Empty for the main network.
	DataDirName string

	// DNSSeeds defines a list of DNS seeds for the network that are used
	// as one method to discover peers.
	DNSSeeds []DNSSeed

	AlertPubKey []byte
	SporkPubKey string

	// MaxTipAge is the age after which the tip is considered stale.
	MaxTipAge           time.Duration
	DelayGetHeadersTime time.Duration
	PruneAfterHeight    uint64

	Consensus ConsensusParams

	// Genesis holds the inputs of the genesis block and
	// ExpectedGenesisHash and ExpectedGenesisMerkleRoot the values it must
	// produce.
	Genesis                   GenesisBlockOpts
	ExpectedGenesisHash       chainhash.Hash
	ExpectedGenesisMerkleRoot chainhash.Hash

	// Checkpoints ordered from oldest to newest.
	Checkpoints CheckpointData

	// Address encoding magics
	PubKeyHashAddrID byte
	ScriptHashAddrID byte
	PrivateKeyID     byte

	// BIP32 hierarchical deterministic extended key magics
	HDPublicKeyID  [4]byte
	HDPrivateKeyID [4]byte

	// BIP44 coin type used in the hierarchical deterministic path for
	// address generation.
	HDCoinType uint32

	// Policy switches.
	MiningRequiresPeers      bool
	DefaultConsistencyChecks bool
	RequireStandard          bool
	MineBlocksOnDemand       bool

	PoolMaxTransactions        int
	FulfilledRequestExpireTime time.Duration

	// set by Registry.Register once the self-checks passed.
	genesisBlock      *wire.MsgBlock
	genesisHash       chainhash.Hash
	genesisMerkleRoot chainhash.Hash
}

// GenesisBlock returns the validated genesis block. It is nil until the
// params have been registered and is shared, so callers must not modify it.
func (p *Params) GenesisBlock() *wire.MsgBlock {
	return p.genesisBlock
}

// GenesisHash returns a copy of the validated genesis block hash.
func (p *Params) GenesisHash() *chainhash.Hash {
	hash := p.genesisHash
	return &hash
}

// GenesisMerkleRoot returns the merkle root of the validated genesis block.
func (p *Params) GenesisMerkleRoot() chainhash.Hash {
	return p.genesisMerkleRoot
}

// detach replaces the pointer, slice and big number fields with private
// copies so the caller's value no longer aliases the registered params.
func (p *Params) detach() {
	p.DNSSeeds = append([]DNSSeed(nil), p.DNSSeeds...)
	p.AlertPubKey = append([]byte(nil), p.AlertPubKey...)
	p.Genesis.OutputScript = append([]byte(nil), p.Genesis.OutputScript...)

	c := &p.Consensus
	c.BackboneScript = append([]byte(nil), c.BackboneScript...)
	if c.PowLimit != nil {
		c.PowLimit = new(big.Int).Set(c.PowLimit)
	}
	if c.MinimumChainWork != nil {
		c.MinimumChainWork = new(big.Int).Set(c.MinimumChainWork)
	}

	if len(p.Checkpoints.Checkpoints) == 0 {
		return
	}
	checkpoints := make([]Checkpoint, len(p.Checkpoints.Checkpoints))
	for i, cp := range p.Checkpoints.Checkpoints {
		checkpoints[i].Height = cp.Height
		if cp.Hash != nil {
			hash := *cp.Hash
			checkpoints[i].Hash = &hash
		}
	}
	p.Checkpoints.Checkpoints = checkpoints
}

// AddressPrefixes returns the base58 version bytes of the network.
func (p *Params) AddressPrefixes() nrgutil.AddressPrefixes {
	return nrgutil.AddressPrefixes{
		PubKeyHashAddrID: p.PubKeyHashAddrID,
		ScriptHashAddrID: p.ScriptHashAddrID,
	}
}

// BackboneAddress returns the address encoded by the backbone script.
func (p *Params) BackboneAddress() (*nrgutil.Address, error) {
	hash, class, err := txscript.ExtractHash(p.Consensus.BackboneScript)
	if err != nil {
		return nil, err
	}

	if class == txscript.ScriptHashTy {
		return nrgutil.NewAddressScriptHashFromHash(hash, p.ScriptHashAddrID)
	}
	return nrgutil.NewAddressPubKeyHash(hash, p.PubKeyHashAddrID)
}

// AlertPubKeyHex returns the alert key as hex.
func (p *Params) AlertPubKeyHex() string {
	return hex.EncodeToString(p.AlertPubKey)
}

// newHashFromStr converts the passed big-endian hex string into a
// chainhash.Hash.  It only differs from the one available in chainhash in that
// it panics on an error since it will only (and must only) be called with
// hard-coded, and therefore known good, hashes.
func newHashFromStr(hexStr string) *chainhash.Hash {
	hash, err := chainhash.NewHashFromStr(hexStr)
	if err != nil {
		panic(err)
	}
	return hash
}

// hexToBytes panics on invalid hard-coded keys.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// hexToBig panics on invalid hard-coded limits.
func hexToBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex number " + s)
	}
	return n
}
