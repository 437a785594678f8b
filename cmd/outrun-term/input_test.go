package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/golangdaddy/outrun/pkg/player"
)

func TestKeysDecay(t *testing.T) {
	var k keys
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, player.Input{}, k.input(start))

	k.press(controlFaster, start)
	k.press(controlLeft, start.Add(100*time.Millisecond))

	assert.Equal(t, player.Input{Left: true, Faster: true}, k.input(start.Add(120*time.Millisecond)))
	assert.Equal(t, player.Input{Left: true}, k.input(start.Add(200*time.Millisecond)))
	assert.Equal(t, player.Input{}, k.input(start.Add(300*time.Millisecond)))
}

func TestKeysRelease(t *testing.T) {
	var k keys
	now := time.Now()
	k.press(controlRight, now)
	k.press(controlSlower, now)
	k.release(controlRight)

	assert.Equal(t, player.Input{Slower: true}, k.input(now.Add(10*time.Millisecond)))
}
