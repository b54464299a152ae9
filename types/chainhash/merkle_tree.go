/*
 * Copyright (c) 2021 The Energi Core developers
 * Use of this source code is governed by an ISC
 * license that can be found in the LICENSE file.
 */

package chainhash

// HashMerkleBranches takes two hashes, treated as the left and right tree
// nodes, and returns the double sha256 of their concatenation.
func HashMerkleBranches(left *Hash, right *Hash) *Hash {
	var h [HashSize * 2]byte
	copy(h[:HashSize], left[:])
	copy(h[HashSize:], right[:])

	newHash := DoubleHashH(h[:])
	return &newHash
}

// nextLevel folds one level of the tree. An odd trailing node is paired with
// itself.
func nextLevel(level []Hash) []Hash {
	next := make([]Hash, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		right := i + 1
		if right == len(level) {
			right = i
		}
		next = append(next, *HashMerkleBranches(&level[i], &level[right]))
	}
	return next
}

// MerkleTreeRoot returns the root of the bitcoin-style merkle tree built over
// the hashes. The root of a single leaf is the leaf itself and the root of an
// empty set is the zero hash.
func MerkleTreeRoot(hashes []Hash) Hash {
	if len(hashes) == 0 {
		return ZeroHash
	}

	level := make([]Hash, len(hashes))
	copy(level, hashes)
	for len(level) > 1 {
		level = nextLevel(level)
	}
	return level[0]
}

// BuildMerkleTreeProof returns the sibling path of the first leaf, from the
// bottom of the tree to the top.
func BuildMerkleTreeProof(hashes []Hash) []Hash {
	proof := make([]Hash, 0)
	if len(hashes) < 2 {
		return proof
	}

	level := make([]Hash, len(hashes))
	copy(level, hashes)
	for len(level) > 1 {
		proof = append(proof, level[1])
		level = nextLevel(level)
	}
	return proof
}

// ValidateMerkleTreeProof checks that the first leaf together with the proof
// rebuilds the expected root.
func ValidateMerkleTreeProof(leaf Hash, proof []Hash, root Hash) bool {
	current := leaf
	for i := range proof {
		current = *HashMerkleBranches(&current, &proof[i])
	}
	return current == root
}
