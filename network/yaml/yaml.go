/*
Package yaml provides methods to parse network.Network definitions
from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/bayesnet/network"
	yaml "gopkg.in/yaml.v2"
)

type nodeDefinition struct {
	Name    string             `yaml:"name"`
	Parents []string           `yaml:"parents"`
	Prior   *float64           `yaml:"prior"`
	CPT     map[string]float64 `yaml:"cpt"`
}

/*
ReadNetwork takes a slice of bytes with a network definition in YAML and
returns the network parsed from it or an error.
The YAML is expected to be an object with a nodes property listing the
nodes in topological order. Each node has a name, and either a prior
with its probability of being true, when it has no parents, or a list
of parents and a cpt object. The cpt object has a property for each
configuration of the parents, written as one T or F character per
parent in the order they are listed, with the probability of the node
being true under that configuration.
*/
func ReadNetwork(data []byte) (*network.Network, error) {
	definition := struct {
		Nodes []nodeDefinition `yaml:"nodes"`
	}{}
	err := yaml.Unmarshal(data, &definition)
	if err != nil {
		return nil, fmt.Errorf("parsing yml network: %v", err)
	}
	if len(definition.Nodes) == 0 {
		return nil, fmt.Errorf("network definition has no nodes")
	}
	specs := make([]network.NodeSpec, 0, len(definition.Nodes))
	for _, nd := range definition.Nodes {
		spec, err := nd.spec()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return network.New(specs)
}

/*
ReadNetworkFromFile takes a filepath string, reads its contents and uses
ReadNetwork to parse it and return a network or an error.
*/
func ReadNetworkFromFile(filepath string) (*network.Network, error) {
	data, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading network yml file %s: %v", filepath, err)
	}
	n, err := ReadNetwork(data)
	if err != nil {
		err = fmt.Errorf("parsing network yml file %s: %v", filepath, err)
	}
	return n, err
}

func (nd nodeDefinition) spec() (network.NodeSpec, error) {
	spec := network.NodeSpec{Name: nd.Name, Parents: nd.Parents}
	switch {
	case nd.Prior != nil && nd.CPT != nil:
		return spec, fmt.Errorf("node %s defines both a prior and a cpt", nd.Name)
	case nd.Prior != nil:
		if len(nd.Parents) > 0 {
			return spec, fmt.Errorf("node %s has parents and a prior instead of a cpt", nd.Name)
		}
		spec.CPT = network.Prior(*nd.Prior)
	default:
		cpt, err := network.ParseTable(nd.CPT)
		if err != nil {
			return spec, fmt.Errorf("node %s: %v", nd.Name, err)
		}
		spec.CPT = cpt
	}
	return spec, nil
}
