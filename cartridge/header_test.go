package cartridge

import (
	"errors"
	"testing"
)

func TestParseHeader(t *testing.T) {
	cases := []struct {
		name  string
		bytes []byte
		want  Header
	}{
		{
			name:  "NROM, horizontal mirroring",
			bytes: []byte{0x4E, 0x45, 0x53, 0x1A, 0x02, 0x01, 0x00, 0x00, 0, 0, 0, 0, 0, 0, 0, 0},
			want:  Header{PRGBlocks: 2, CHRBlocks: 1, Mapper: 0, Mirroring: MirrorHorizontal, HasTrainer: false},
		},
		{
			name:  "vertical mirroring, battery, trainer",
			bytes: []byte{0x4E, 0x45, 0x53, 0x1A, 0x01, 0x01, 0x07, 0x00, 0, 0, 0, 0, 0, 0, 0, 0},
			want:  Header{PRGBlocks: 1, CHRBlocks: 1, Mapper: 0, Mirroring: MirrorVertical, Battery: true, HasTrainer: true},
		},
		{
			name:  "four-screen overrides mirroring bit",
			bytes: []byte{0x4E, 0x45, 0x53, 0x1A, 0x01, 0x01, 0x09, 0x00, 0, 0, 0, 0, 0, 0, 0, 0},
			want:  Header{PRGBlocks: 1, CHRBlocks: 1, Mapper: 0, Mirroring: MirrorFourScreen, HasTrainer: false},
		},
		{
			name:  "mapper split across flags6/flags7",
			bytes: []byte{0x4E, 0x45, 0x53, 0x1A, 0x01, 0x01, 0x10, 0x20, 0, 0, 0, 0, 0, 0, 0, 0},
			want:  Header{PRGBlocks: 1, CHRBlocks: 1, Mapper: 0x21, Mirroring: MirrorHorizontal},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseHeader(tc.bytes)
			if err != nil {
				t.Fatalf("parseHeader returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestParseHeaderBadMagic(t *testing.T) {
	bad := []byte{'B', 'A', 'D', '!', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	_, err := parseHeader(bad)
	if !errors.Is(err, ErrInvalidCartridge) {
		t.Fatalf("got err %v, want ErrInvalidCartridge", err)
	}
}
