package xcycle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/macipr/pkg/addr/xaddr"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		kind  xaddr.Kind
		text  string
		start string
		dir   Direction
		count uint64
	}{
		{"single ipv4", xaddr.IPv4, "10.0.0.1", "10.0.0.1", Forward, 1},
		{"ipv4 forward range", xaddr.IPv4, "192.168.0.254-192.168.1.1", "192.168.0.254", Forward, 4},
		{"ipv4 backward range", xaddr.IPv4, "192.168.1.1-192.168.0.254", "192.168.1.1", Backward, 4},
		{"equal ends", xaddr.IPv4, "10.0.0.1-10.0.0.1", "10.0.0.1", Forward, 1},
		{"positive offset", xaddr.IPv4, "10.0.0.1+5", "10.0.0.1", Forward, 6},
		{"explicit plus sign", xaddr.IPv4, "10.0.0.1++5", "", Forward, 0},
		{"negative offset", xaddr.IPv4, "10+-9", "0.0.0.10", Backward, 10},
		{"zero offset", xaddr.IPv4, "10.0.0.1+0", "10.0.0.1", Forward, 1},
		{"integer range", xaddr.IPv4, "0-255", "0.0.0.0", Forward, 256},
		{"full ipv4 space", xaddr.IPv4, "0.0.0.0-255.255.255.255", "0.0.0.0", Forward, 1 << 32},
		{"dash mac is single", xaddr.MAC, "11-22-33-44-55-66", "11:22:33:44:55:66", Forward, 1},
		{"dash mac range", xaddr.MAC, "11-22-33-44-55-66-11-22-33-44-55-6f", "11:22:33:44:55:66", Forward, 10},
		{"colon mac range", xaddr.MAC, "aa:bb:cc:dd:ee:ff-aa:bb:cc:dd:ef:01", "aa:bb:cc:dd:ee:ff", Forward, 3},
		{"mac offset", xaddr.MAC, "00:00:00:00:00:00+-1", "00:00:00:00:00:00", Backward, 2},
		{"ipv6 range", xaddr.IPv6, "fe80::1-fe80::a", "fe80::1", Forward, 10},
		{"ipv6 integer range", xaddr.IPv6, "100000-100002", "::1:86a0", Forward, 3},
		{"ipv6 max count", xaddr.IPv6, "::-::ffff:ffff:ffff:fffe", "::", Forward, math.MaxUint64},
		{"number range", xaddr.Number, "1-10", "1", Forward, 10},
		{"number backward", xaddr.Number, "10-1", "10", Backward, 10},
		{"number offset", xaddr.Number, "100+-100", "100", Backward, 101},
		{"min int64 offset", xaddr.Number, "0+-9223372036854775808", "0", Backward, 1<<63 + 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.kind, tt.text)
			if tt.count == 0 {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.kind, c.Kind())
			assert.Equal(t, tt.start, c.Start.String())
			assert.Equal(t, tt.dir, c.Dir)
			assert.Equal(t, tt.count, c.Count)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		kind xaddr.Kind
		text string
		want []error
	}{
		{"not a mac", xaddr.MAC, "not-a-mac", []error{xaddr.ErrInvalidMAC}},
		{"bad ipv4", xaddr.IPv4, "300.1.1.1", []error{xaddr.ErrInvalidIPv4}},
		{"bad ipv6", xaddr.IPv6, "fe80:::1", []error{xaddr.ErrInvalidIPv6}},
		{"one sided range", xaddr.IPv4, "10.0.0.1-bogus", []error{ErrInvalidRange}},
		{"one sided range start", xaddr.IPv4, "bogus-10.0.0.1", []error{ErrInvalidRange}},
		{"mac split ambiguity", xaddr.MAC, "0-1-2", []error{ErrInvalidRange}},
		{"bad offset start", xaddr.IPv4, "bogus+5", []error{ErrInvalidRange, xaddr.ErrInvalidIPv4}},
		{"bad offset", xaddr.IPv4, "10.0.0.1+five", []error{ErrInvalidRange}},
		{"offset overflow", xaddr.IPv4, "10.0.0.1+9223372036854775808", []error{ErrInvalidRange}},
		{"empty offset", xaddr.IPv4, "10.0.0.1+", []error{ErrInvalidRange}},
		{"ipv6 too large", xaddr.IPv6, "::-::1:0:0:0:0", []error{ErrInvalidRange}},
		{"number too large", xaddr.Number, "0-18446744073709551615", []error{ErrInvalidRange, ErrInvalidNumberArgument}},
		{"number junk", xaddr.Number, "abc", []error{ErrInvalidNumberArgument, xaddr.ErrInvalidNumber}},
		{"number negative", xaddr.Number, "-5", []error{ErrInvalidNumberArgument, ErrInvalidRange}},
		{"number bad offset", xaddr.Number, "1+x", []error{ErrInvalidNumberArgument, ErrInvalidRange}},
		{"empty", xaddr.IPv4, "", []error{xaddr.ErrInvalidIPv4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.kind, tt.text)
			require.Error(t, err)
			for _, want := range tt.want {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestParseNotAMACIsNotRange(t *testing.T) {
	_, err := Parse(xaddr.MAC, "not-a-mac")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidRange)
}

func TestParseTooLargeCount(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"::-::1:0:0:0:0", "(18446744073709551617 addresses)"},
		{"::-ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff", "(340282366920938463463374607431768211456 addresses)"},
		{"ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff-::", "(340282366920938463463374607431768211456 addresses)"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := Parse(xaddr.IPv6, tt.text)
			require.ErrorIs(t, err, ErrInvalidRange)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestBind(t *testing.T) {
	kinds := []xaddr.Kind{xaddr.MAC, xaddr.IPv4, xaddr.Number}
	cycles, err := Bind(kinds, []string{"00:00:00:00:00:01", "10.0.0.1-10.0.0.4", "1+9"})
	require.NoError(t, err)
	require.Len(t, cycles, 3)
	assert.Equal(t, []uint64{1, 4, 10}, []uint64{cycles[0].Count, cycles[1].Count, cycles[2].Count})

	_, err = Bind(kinds, []string{"00:00:00:00:00:01", "bogus", "1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, xaddr.ErrInvalidIPv4)
	assert.Contains(t, err.Error(), `argument 2 "bogus"`)

	_, err = Bind(kinds, []string{"1"})
	assert.ErrorIs(t, err, ErrKindCount)

	cycles, err = Bind(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, cycles)
}
