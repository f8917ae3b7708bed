package chain

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Artifact is the compiled-contract JSON the hardhat toolchain emits.
type Artifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

func LoadArtifact(artifactsPath, contractName string) (*Artifact, error) {
	path := filepath.Join(artifactsPath, contractName+".json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}
	var artifact Artifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("parse artifact %s: %w", path, err)
	}
	return &artifact, nil
}

func (a *Artifact) ParsedABI() (abi.ABI, error) {
	return abi.JSON(strings.NewReader(string(a.ABI)))
}
