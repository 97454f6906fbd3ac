package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceLock holds the single-instance lock for the tray app.
type InstanceLock struct {
	listener net.Listener
	address  string
}

// AcquireInstanceLock binds a localhost port derived from the app name.
// A second instance fails the bind and gets ErrAlreadyRunning.
func AcquireInstanceLock(appName string) (*InstanceLock, error) {
	address := fmt.Sprintf("127.0.0.1:%d", portFromName(appName))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, ErrAlreadyRunning
	}
	return &InstanceLock{listener: listener, address: address}, nil
}

// Release frees the lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	return lock.listener.Close()
}

// Address returns the bound address.
func (lock *InstanceLock) Address() string {
	if lock == nil {
		return ""
	}
	return lock.address
}

func portFromName(appName string) int {
	const (
		minPort = 40000
		maxPort = 59999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(sanitizedAppName(appName)))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
