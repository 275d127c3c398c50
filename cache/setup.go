// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Strata Network
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"reflect"
	"sync"
	"time"

	"github.com/strata-network/stratad/background"
	"github.com/strata-network/stratad/fault"
	"github.com/strata-network/stratad/gcache"
)

// MapPool - locked key→value pool
type MapPool struct {
	sync.Mutex
	m *gcache.Map[string, interface{}]
}

// SetPool - locked membership pool
type SetPool struct {
	sync.Mutex
	s *gcache.Set[string]
}

// CountedPool - locked decaying-count pool
type CountedPool struct {
	sync.Mutex
	c *gcache.Counted[string]
}

type pools struct {
	PendingTx *MapPool     `ttl:"72h" slot:"1h"`
	SeenTx    *SetPool     `ttl:"24h" slot:"30m"`
	PeerRate  *CountedPool `ttl:"1m" slot:"5s"`
	TestA     *MapPool     `ttl:"250ms" slot:"50ms"`
	TestB     *MapPool     `ttl:"1h" slot:"5m"`
}

// PoolConfig - optional TTL/slot override for one pool
// values are Go duration strings, empty means keep the default
type PoolConfig struct {
	TTL  string `gluamapper:"ttl"`
	Slot string `gluamapper:"slot"`
}

// a pool the cleaner can sweep
type sweeper interface {
	sweep(nowMs uint64)
}

type globalDataType struct {
	sweepers      []sweeper
	sweepInterval time.Duration
	background    *background.T
}

// Pool - the interface to perform CRUD operations on the memory pools
var Pool pools
var globalData globalDataType

// Initialise - build all pools and start the sweeper
//
// overrides is keyed by pool field name (e.g. "PendingTx") and may be
// nil to accept the tag defaults
func Initialise(overrides map[string]PoolConfig) error {
	poolType := reflect.TypeOf(Pool)
	poolValue := reflect.ValueOf(&Pool).Elem()

	globalData.sweepers = make([]sweeper, 0, poolType.NumField())
	globalData.sweepInterval = 0

	for i := 0; i < poolType.NumField(); i++ {
		fieldInfo := poolType.Field(i)

		ttl, err := time.ParseDuration(fieldInfo.Tag.Get("ttl"))
		if err != nil {
			return err
		}
		slot, err := time.ParseDuration(fieldInfo.Tag.Get("slot"))
		if err != nil {
			return err
		}
		if c, ok := overrides[fieldInfo.Name]; ok {
			if c.TTL != "" {
				if ttl, err = time.ParseDuration(c.TTL); err != nil {
					return err
				}
			}
			if c.Slot != "" {
				if slot, err = time.ParseDuration(c.Slot); err != nil {
					return err
				}
			}
		}
		if ttl < slot {
			return fault.ErrInvalidPoolConfiguration
		}

		ttlMs, err := gcache.NewDuration(uint64(ttl.Milliseconds()))
		if err != nil {
			return fault.ErrInvalidPoolConfiguration
		}
		slotMs, err := gcache.NewDuration(uint64(slot.Milliseconds()))
		if err != nil {
			return fault.ErrInvalidPoolConfiguration
		}

		var p sweeper
		switch fieldInfo.Type {
		case reflect.TypeOf((*MapPool)(nil)):
			p = &MapPool{m: gcache.NewMap[string, interface{}](ttlMs, slotMs)}
		case reflect.TypeOf((*SetPool)(nil)):
			p = &SetPool{s: gcache.NewSet[string](ttlMs, slotMs)}
		case reflect.TypeOf((*CountedPool)(nil)):
			p = &CountedPool{c: gcache.NewCounted[string](ttlMs, slotMs)}
		default:
			return fault.ErrInvalidPoolConfiguration
		}
		poolValue.Field(i).Set(reflect.ValueOf(p))
		globalData.sweepers = append(globalData.sweepers, p)

		// the cleaner has to run at the cadence of the narrowest slot
		// or that pool's TTL stretches by a whole sweep period
		if globalData.sweepInterval == 0 || slot < globalData.sweepInterval {
			globalData.sweepInterval = slot
		}
	}

	globalData.background = background.Start(background.Processes{
		&cleaner{},
	}, nil)

	return nil
}

// Finalise - stop the sweeper
func Finalise() {
	globalData.background.Stop()
	globalData.background = nil
}

// current wall-clock time for filing entries into slots
func nowMilli() uint64 {
	return uint64(time.Now().UnixMilli())
}

// Put - store or overwrite a value, restarting its TTL
func (p *MapPool) Put(key string, value interface{}) {
	p.Lock()
	defer p.Unlock()

	p.m.Set(key, value, nowMilli())
}

// Get - fetch a value, false if absent
func (p *MapPool) Get(key string) (interface{}, bool) {
	p.Lock()
	defer p.Unlock()

	return p.m.Get(key)
}

// Delete - drop a key
func (p *MapPool) Delete(key string) {
	p.Lock()
	defer p.Unlock()

	p.m.Remove(key)
}

// Size - number of live entries
func (p *MapPool) Size() int {
	p.Lock()
	defer p.Unlock()

	return p.m.Len()
}

func (p *MapPool) sweep(nowMs uint64) {
	p.Lock()
	defer p.Unlock()

	p.m.GC(nowMs)
}

// Add - insert a member, restarting its TTL
func (p *SetPool) Add(key string) {
	p.Lock()
	defer p.Unlock()

	p.s.Add(key, nowMilli())
}

// Has - membership test
func (p *SetPool) Has(key string) bool {
	p.Lock()
	defer p.Unlock()

	return p.s.Has(key)
}

// Delete - drop a member
func (p *SetPool) Delete(key string) {
	p.Lock()
	defer p.Unlock()

	p.s.Remove(key)
}

// Size - number of live members
func (p *SetPool) Size() int {
	p.Lock()
	defer p.Unlock()

	return p.s.Len()
}

func (p *SetPool) sweep(nowMs uint64) {
	p.Lock()
	defer p.Unlock()

	p.s.GC(nowMs)
}

// Touch - record one occurrence and return the new count
func (p *CountedPool) Touch(key string) uint64 {
	p.Lock()
	defer p.Unlock()

	return p.c.Touch(key, nowMilli())
}

// Count - current count, zero when absent
func (p *CountedPool) Count(key string) uint64 {
	p.Lock()
	defer p.Unlock()

	return p.c.Count(key)
}

// Delete - forget a key
func (p *CountedPool) Delete(key string) {
	p.Lock()
	defer p.Unlock()

	p.c.Remove(key)
}

// Size - number of keys with a live count
func (p *CountedPool) Size() int {
	p.Lock()
	defer p.Unlock()

	return p.c.Len()
}

func (p *CountedPool) sweep(nowMs uint64) {
	p.Lock()
	defer p.Unlock()

	p.c.GC(nowMs)
}
