package common

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Network is the ledger network an X-address is bound to.
type Network int

const (
	Undefined Network = iota
	Mainnet
	Testnet
)

var networkToString = map[Network]string{
	Mainnet: "mainnet",
	Testnet: "testnet",
}

func FromString(str string) (Network, error) {
	for key, value := range networkToString {
		if strings.EqualFold(value, str) {
			return key, nil
		}
	}
	return Undefined, fmt.Errorf("unsupported network: %s", str)
}

// NetworkFromIsTest maps the X-address test flag to a Network.
func NetworkFromIsTest(isTest bool) Network {
	if isTest {
		return Testnet
	}
	return Mainnet
}

func (n Network) IsTest() bool {
	return n == Testnet
}

func (n Network) String() string {
	if str, ok := networkToString[n]; ok {
		return str
	}
	return "UNKNOWN"
}

func (n Network) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

func (n *Network) UnmarshalJSON(data []byte) error {
	var networkStr string
	if err := json.Unmarshal(data, &networkStr); err != nil {
		return err
	}
	network, err := FromString(networkStr)
	if err != nil {
		return err
	}
	*n = network
	return nil
}
