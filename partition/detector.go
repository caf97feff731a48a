/*
	partition assigns an engine instance its host slot in the cluster: the
	slot selects the owned vertex range of the partitioned graph and the
	endpoint of the sync transport.
*/

package partition

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

var (
	// The following functions are overridden in tests.
	getHostname = os.Hostname
	lookupSRV   = net.LookupSRV

	// ErrNoHostDataAvailableYet is returned by the SRV-aware detector to
	// indicate that SRV records for the engine's headless service are not
	// yet available. Record creation can take a while after a stateful set
	// has been deployed.
	ErrNoHostDataAvailableYet = errors.New("no host data available yet")
)

// Detector is implemented by types that assign an engine instance to a
// host slot of the cluster.
type Detector interface {
	// HostInfo returns the host slot of this instance and the total number
	// of hosts in the cluster.
	HostInfo() (int, int, error)
}

// SRVRecord detects the cluster size by performing a SRV (service) query
// and counting the number of results, and takes this instance's slot from
// its own host name.
type SRVRecord struct {
	// Headless service name.
	srvName string
}

// DetectFromSRVRecords returns a Detector implementation for engines
// deployed as a Stateful Set in a kubernetes environment: the pod ordinal
// at the end of the host name is the host slot, and one SRV record exists
// per peer.
func DetectFromSRVRecords(srvName string) SRVRecord {
	return SRVRecord{srvName: srvName}
}

// HostInfo implements Detector.
func (det SRVRecord) HostInfo() (int, int, error) {
	hostname, err := getHostname()
	if err != nil {
		return -1, -1, fmt.Errorf("host detector: unable to detect host name: %w", err)
	}

	// Stateful set pods are named [SERVICE_NAME-ORDINAL]; everything past
	// the final dash is the ordinal.
	slot := -1
	if cut := strings.LastIndexByte(hostname, '-'); cut >= 0 {
		if parsed, parseErr := strconv.Atoi(hostname[cut+1:]); parseErr == nil {
			slot = parsed
		}
	}

	if slot < 0 {
		return -1, -1, errors.New(
			"host detector: unable to extract host slot from the host name suffix",
		)
	}

	_, records, err := lookupSRV("", "", det.srvName)
	if err != nil {
		return -1, -1, ErrNoHostDataAvailableYet
	}

	if slot >= len(records) {
		return -1, -1, fmt.Errorf(
			"host detector: host slot %d outside the %d-host cluster advertised by %q",
			slot, len(records), det.srvName,
		)
	}

	return slot, len(records), nil
}

// Fixed is a Detector implementation that always returns the wired host
// slot values. Used for local runs and tests.
type Fixed struct {
	Host     int
	NumHosts int
}

// HostInfo implements Detector.
func (det Fixed) HostInfo() (int, int, error) {
	return det.Host, det.NumHosts, nil
}
