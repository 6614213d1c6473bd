package main

import (
	"encoding/binary"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-zookeeper/zk"

	"github.com/lab2439/uuidx"
)

// Demonstrates ZooKeeper-backed stable node identity for UUIDv6. The
// library fills the node field with random bytes by default; a fleet that
// wants one recognizable node value per worker (the classic version-1
// deployment model carried over to v6) can register with ZooKeeper, derive
// a 48-bit node from its assigned worker ID, and stamp it into each
// generated identifier.

const zkRootPath = "/uuidx_nodes"

// NodeInfo is the registration record stored per worker.
type NodeInfo struct {
	WorkerID   int64 `json:"worker_id"`
	CreateTime int64 `json:"create_time"`
	LastTime   int64 `json:"last_time"`
}

// NodeRegistry assigns and maintains a worker identity in ZooKeeper.
type NodeRegistry struct {
	conn    *zk.Conn
	service string
	port    int

	workerID int64
	node     [6]byte
}

// NewNodeRegistry connects to ZooKeeper and registers (or recovers) this
// worker's identity under /uuidx_nodes/<service><port>.
func NewNodeRegistry(servers []string, service string, port int) (*NodeRegistry, error) {
	conn, _, err := zk.Connect(servers, 5*time.Second)
	if err != nil {
		return nil, fmt.Errorf("connect zk: %w", err)
	}

	r := &NodeRegistry{
		conn:    conn,
		service: service,
		port:    port,
	}

	if err := r.registerOrRecover(); err != nil {
		conn.Close()
		return nil, err
	}

	// Node = worker ID in the low bits with the multicast bit set, which
	// RFC 9562 §6.10 requires for node values not taken from a MAC.
	binary.BigEndian.PutUint32(r.node[2:], uint32(r.workerID))
	r.node[0] |= 0x01

	log.Printf("registered workerID %d, node %x", r.workerID, r.node)
	return r, nil
}

// Close tears down the ZooKeeper session.
func (r *NodeRegistry) Close() {
	r.conn.Close()
}

// registerOrRecover reads an existing registration for this service+port
// or creates a fresh one with the next worker ID.
func (r *NodeRegistry) registerOrRecover() error {
	if err := r.ensurePath(zkRootPath); err != nil {
		return err
	}

	nodeKey := fmt.Sprintf("%s/%s%d", zkRootPath, r.service, r.port)
	nowMs := time.Now().UnixMilli()

	exists, _, err := r.conn.Exists(nodeKey)
	if err != nil {
		return fmt.Errorf("check node: %w", err)
	}

	if exists {
		data, _, err := r.conn.Get(nodeKey)
		if err != nil {
			return fmt.Errorf("get node info: %w", err)
		}
		var info NodeInfo
		if err := json.Unmarshal(data, &info); err != nil {
			return fmt.Errorf("decode node info: %w", err)
		}
		if nowMs < info.LastTime {
			return fmt.Errorf("clock moved backwards: %d < %d", nowMs, info.LastTime)
		}
		r.workerID = info.WorkerID
		log.Printf("recovered workerID %d from zk", r.workerID)
		return nil
	}

	// New registration: claim the next sequential slot
	children, _, err := r.conn.Children(zkRootPath)
	if err != nil {
		return fmt.Errorf("list nodes: %w", err)
	}
	r.workerID = int64(len(children))

	info := NodeInfo{
		WorkerID:   r.workerID,
		CreateTime: nowMs,
		LastTime:   nowMs,
	}
	data, err := json.Marshal(info)
	if err != nil {
		return err
	}
	if _, err := r.conn.Create(nodeKey, data, 0, zk.WorldACL(zk.PermAll)); err != nil {
		return fmt.Errorf("create node: %w", err)
	}
	return nil
}

// ensurePath creates every segment of the given path if missing.
func (r *NodeRegistry) ensurePath(path string) error {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	cur := ""
	for _, p := range parts {
		cur += "/" + p
		exists, _, err := r.conn.Exists(cur)
		if err != nil {
			return err
		}
		if !exists {
			if _, err := r.conn.Create(cur, nil, 0, zk.WorldACL(zk.PermAll)); err != nil && err != zk.ErrNodeExists {
				return err
			}
		}
	}
	return nil
}

// NewV6 generates a UUIDv6 carrying this worker's stable node value in
// place of the library's random default.
func (r *NodeRegistry) NewV6() (uuidx.UUID, error) {
	id, err := uuidx.NewV6()
	if err != nil {
		return uuidx.Nil, err
	}
	copy(id[10:], r.node[:])
	return id, nil
}

func main() {
	servers := flag.String("zk", "127.0.0.1:2181", "comma-separated ZooKeeper servers")
	service := flag.String("service", "demo", "service name for registration")
	port := flag.Int("port", 8080, "port used to derive node uniqueness")
	count := flag.Int("count", 5, "number of identifiers to generate")
	flag.Parse()

	reg, err := NewNodeRegistry(strings.Split(*servers, ","), *service, *port)
	if err != nil {
		log.Fatalf("node registry: %v", err)
	}
	defer reg.Close()

	for i := 0; i < *count; i++ {
		id, err := reg.NewV6()
		if err != nil {
			log.Fatalf("generate: %v", err)
		}
		fmt.Printf("%s  (node %x, time %s)\n", id, id[10:], id.Time().Format(time.RFC3339Nano))
	}
}
