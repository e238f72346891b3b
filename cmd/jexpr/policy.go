package main

import (
	"fmt"
	"os"

	"github.com/HyperLuna/jexpr/certify"
	"gopkg.in/yaml.v3"
)

// policyFile is the YAML shape accepted by --policy. A preset seeds the
// switch set; explicit allow entries override it.
//
//	preset: baseline
//	allow:
//	  mutation: true
//	params: [order, g]
//	global: g
type policyFile struct {
	Preset string   `yaml:"preset"`
	Allow  switches `yaml:"allow"`
	Params []string `yaml:"params"`
	Global string   `yaml:"global"`
}

type switches struct {
	This       *bool `yaml:"this"`
	Calls      *bool `yaml:"calls"`
	Arrows     *bool `yaml:"arrows"`
	Mutation   *bool `yaml:"mutation"`
	Inspection *bool `yaml:"inspection"`
}

func loadPolicyFile(path string) (*policyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parsePolicyFile(data)
}

func parsePolicyFile(data []byte) (*policyFile, error) {
	var file policyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("invalid policy file: %w", err)
	}
	switch file.Preset {
	case "", "baseline", "strict", "permissive":
	default:
		return nil, fmt.Errorf("unknown policy preset %q", file.Preset)
	}
	return &file, nil
}

func (f *policyFile) policy() certify.Policy {
	p := certify.Baseline
	switch f.Preset {
	case "strict":
		p = certify.Strict
	case "permissive":
		p = certify.Permissive
	}
	if f.Allow.This != nil {
		p.AllowThis = *f.Allow.This
	}
	if f.Allow.Calls != nil {
		p.AllowCalls = *f.Allow.Calls
	}
	if f.Allow.Arrows != nil {
		p.AllowArrows = *f.Allow.Arrows
	}
	if f.Allow.Mutation != nil {
		p.AllowMutation = *f.Allow.Mutation
	}
	if f.Allow.Inspection != nil {
		p.AllowInspection = *f.Allow.Inspection
	}
	return p
}
