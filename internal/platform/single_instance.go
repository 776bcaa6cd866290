// Package platform holds OS integration that sits outside fyne.
package platform

import (
	"bufio"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	activateMessage = "activate"
	dialTimeout     = time.Second
)

// ErrAlreadyRunning indicates another instance already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceGuard holds the single-instance lock. The running instance
// listens on a loopback port derived from the app name; a second launch
// asks it to raise its window and exits.
type InstanceGuard struct {
	listener net.Listener
	address  string
	wg       sync.WaitGroup
}

// AcquireSingleInstance binds the app's loopback port. When the port is
// taken it signals the owner and returns ErrAlreadyRunning.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := AddressFor(appName)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		if signalErr := signalActivate(address); signalErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrAlreadyRunning, signalErr)
		}
		return nil, ErrAlreadyRunning
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Serve accepts activation requests until Release, calling onActivate for
// each one.
func (guard *InstanceGuard) Serve(onActivate func()) {
	if guard == nil || guard.listener == nil {
		return
	}
	guard.wg.Add(1)
	go func() {
		defer guard.wg.Done()
		for {
			conn, err := guard.listener.Accept()
			if err != nil {
				return
			}
			if readActivate(conn) && onActivate != nil {
				onActivate()
			}
		}
	}()
}

// Release frees the lock and waits for Serve to return.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.wg.Wait()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// Address returns the bound address.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

// AddressFor returns the loopback address used by appName.
func AddressFor(appName string) string {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	rangeSize := maxPort - minPort + 1
	port := minPort + int(hash.Sum32()%uint32(rangeSize))
	return fmt.Sprintf("127.0.0.1:%d", port)
}

func signalActivate(address string) error {
	conn, err := net.DialTimeout("tcp", address, dialTimeout)
	if err != nil {
		return fmt.Errorf("contact running instance: %w", err)
	}
	defer conn.Close()
	_ = conn.SetWriteDeadline(time.Now().Add(dialTimeout))
	if _, err := fmt.Fprintln(conn, activateMessage); err != nil {
		return fmt.Errorf("signal running instance: %w", err)
	}
	return nil
}

func readActivate(conn net.Conn) bool {
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(dialTimeout))
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == activateMessage
}
