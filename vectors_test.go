package xxhash

import (
	"testing"
)

// Reference digests below come from libxxhash 0.8.1.

// vectorData is a fixed, easily reproduced input pattern.
func vectorData(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte((i*131 + 17) ^ (i >> 3))
	}
	return b
}

func vectorSecret(n, mul, add int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i*mul + add)
	}
	return b
}

func TestSum32Empty(t *testing.T) {
	if got := Sum32(nil); got != 0x02CC5D05 {
		t.Fatalf("Sum32(nil) = %08x, want 02cc5d05", got)
	}
}

func TestSum32Known(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want uint32
	}{
		{"abc", 0x32D153FF},
		{"Nobody inspects the spammish repetition", 0xE2293B2F},
	} {
		if got := Sum32([]byte(tc.in)); got != tc.want {
			t.Fatalf("Sum32(%q) = %08x, want %08x", tc.in, got, tc.want)
		}
	}
}

func TestSum64Known(t *testing.T) {
	if got := Sum64(nil); got != 0xEF46DB3751D8E999 {
		t.Fatalf("Sum64(nil) = %016x, want ef46db3751d8e999", got)
	}
	if got := Sum64([]byte("abc")); got != 0x44BC2CF5AD770999 {
		t.Fatalf("Sum64(abc) = %016x, want 44bc2cf5ad770999", got)
	}
}

func TestSum3Empty(t *testing.T) {
	if got := Sum3(nil); got != 0x2D06800538D394C2 {
		t.Fatalf("Sum3(nil) = %016x, want 2d06800538d394c2", got)
	}
	want := Uint128{Hi: 0x99AA06D3014798D8, Lo: 0x6001C324468D497F}
	if got := Sum128(nil); got != want {
		t.Fatalf("Sum128(nil) = %v, want %v", got, want)
	}
}

var seeded32Vectors = []struct {
	n    int
	seed uint32
	want uint32
}{
	{0, 1, 0x0B2CB792},
	{0, 42, 0xD5BE6EB8},
	{0, 0x9E3779B1, 0x36B78AE7},
	{0, 0xFFFFFFFF, 0x9061DA9D},
	{1, 1, 0x32812D35},
	{1, 42, 0x1C5997B9},
	{1, 0x9E3779B1, 0x30337151},
	{1, 0xFFFFFFFF, 0xDC9C5EEE},
	{4, 1, 0x43DFB59D},
	{4, 42, 0xC1F8B684},
	{4, 0x9E3779B1, 0x17DE7531},
	{4, 0xFFFFFFFF, 0x52FEA6C4},
	{16, 1, 0x1622DE9B},
	{16, 42, 0xC3E21F68},
	{16, 0x9E3779B1, 0x9D007018},
	{16, 0xFFFFFFFF, 0xB55DA969},
	{17, 1, 0x04F2811D},
	{17, 42, 0xB02370A4},
	{17, 0x9E3779B1, 0x1394E6E8},
	{17, 0xFFFFFFFF, 0x3EA49C89},
	{100, 1, 0x0452D548},
	{100, 42, 0x50C2D961},
	{100, 0x9E3779B1, 0x3362B10C},
	{100, 0xFFFFFFFF, 0x995E79AC},
	{1000, 1, 0x5676379C},
	{1000, 42, 0xCA3040A1},
	{1000, 0x9E3779B1, 0x2EF98634},
	{1000, 0xFFFFFFFF, 0xD823DCBB},
}

func TestSum32SeedKnown(t *testing.T) {
	for _, tc := range seeded32Vectors {
		data := vectorData(tc.n)
		if got := Sum32Seed(data, tc.seed); got != tc.want {
			t.Fatalf("Sum32Seed(len=%d, seed=%#x) = %08x, want %08x", tc.n, tc.seed, got, tc.want)
		}

		// Streaming in uneven chunks must agree.
		e, err := New32(tc.seed)
		if err != nil {
			t.Fatal(err)
		}
		for p := data; len(p) > 0; {
			k := min(len(p), 7)
			if err := e.Update(p[:k]); err != nil {
				t.Fatal(err)
			}
			p = p[k:]
		}
		if got, _ := e.Digest(); got != tc.want {
			t.Fatalf("New32(%#x) streaming len=%d = %08x, want %08x", tc.seed, tc.n, got, tc.want)
		}
		e.Close()
	}
}

// secretVectors pairs a secret with reference XXH3 and XXH128 digests.
var secretVectors = []struct {
	secret []byte
	n      int
	want3  uint64
	want   Uint128
}{
	{vectorSecret(136, 37, 11), 0, 0x8AC65A048C188FE5, Uint128{Hi: 0xF3029DDCE5FB903F, Lo: 0x004ED27F7FCCCFE3}},
	{vectorSecret(136, 37, 11), 3, 0xE36BBB4B1DB5C419, Uint128{Hi: 0xC29136602605826E, Lo: 0xE36BBB4B1DB5C419}},
	{vectorSecret(136, 37, 11), 16, 0x03F6BCEAF8FEE1B2, Uint128{Hi: 0x7C677FACF8688F9D, Lo: 0x56139D0DF5CD149A}},
	{vectorSecret(136, 37, 11), 128, 0xC2FD2F9CAAEF6AF4, Uint128{Hi: 0x50E7E7E2434CF095, Lo: 0x9607A945B93C5F25}},
	{vectorSecret(136, 37, 11), 240, 0xC8A01D8707C867D1, Uint128{Hi: 0xA4EBD357CE61AB91, Lo: 0x67E9E6010FA1E112}},
	{vectorSecret(136, 37, 11), 241, 0x1F07E83CF0178EF1, Uint128{Hi: 0xBD174E07B3B4F846, Lo: 0x1F07E83CF0178EF1}},
	{vectorSecret(136, 37, 11), 1025, 0x70DB8CC825180F18, Uint128{Hi: 0xBEE6B54669412E85, Lo: 0x70DB8CC825180F18}},
	{vectorSecret(200, 89, 5), 0, 0x81B8C97E119B7CD8, Uint128{Hi: 0x996E37EFDB15D591, Lo: 0x57432C10D5EDB890}},
	{vectorSecret(200, 89, 5), 3, 0x835DE52D83397661, Uint128{Hi: 0x24BD67FD25BC825E, Lo: 0x835DE52D83397661}},
	{vectorSecret(200, 89, 5), 16, 0xA4995AFD54D422D5, Uint128{Hi: 0x6CB120A01D0B0134, Lo: 0x278CFE8CBC872B66}},
	{vectorSecret(200, 89, 5), 128, 0x1DEA342FD179418B, Uint128{Hi: 0x30F7C3791E58DFCF, Lo: 0x7AD33B1B9357FCFE}},
	{vectorSecret(200, 89, 5), 240, 0xE4CA539CC7F8C66B, Uint128{Hi: 0xE4CA131DE9C7CCBA, Lo: 0x58DB27116637C061}},
	{vectorSecret(200, 89, 5), 241, 0x4DCD8D570E15641B, Uint128{Hi: 0x72B6F8BCDF9A3C79, Lo: 0x4DCD8D570E15641B}},
	{vectorSecret(200, 89, 5), 1025, 0x5DE3643D73CBDCAF, Uint128{Hi: 0x0E741168D53F91E0, Lo: 0x5DE3643D73CBDCAF}},
}

func TestSumSecretKnown(t *testing.T) {
	for _, tc := range secretVectors {
		data := vectorData(tc.n)

		got3, err := Sum3Secret(data, tc.secret)
		if err != nil {
			t.Fatal(err)
		}
		if got3 != tc.want3 {
			t.Fatalf("Sum3Secret(len=%d, secret=%d) = %016x, want %016x", tc.n, len(tc.secret), got3, tc.want3)
		}

		got, err := Sum128Secret(data, tc.secret)
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Fatalf("Sum128Secret(len=%d, secret=%d) = %v, want %v", tc.n, len(tc.secret), got, tc.want)
		}
	}
}

func TestEngineSecretKnown(t *testing.T) {
	for _, tc := range secretVectors {
		data := vectorData(tc.n)

		for _, chunk := range []int{1, 63, 64, 257} {
			e3, err := New3(tc.secret)
			if err != nil {
				t.Fatal(err)
			}
			e128, err := New128(tc.secret)
			if err != nil {
				t.Fatal(err)
			}

			for p := data; len(p) > 0; {
				k := min(len(p), chunk)
				if err := e3.Update(p[:k]); err != nil {
					t.Fatal(err)
				}
				if err := e128.Update(p[:k]); err != nil {
					t.Fatal(err)
				}
				p = p[k:]
			}

			if got, _ := e3.Digest(); got != tc.want3 {
				t.Fatalf("New3 secret=%d len=%d chunk=%d = %016x, want %016x", len(tc.secret), tc.n, chunk, got, tc.want3)
			}
			if got, _ := e128.Digest(); got != tc.want {
				t.Fatalf("New128 secret=%d len=%d chunk=%d = %v, want %v", len(tc.secret), tc.n, chunk, got, tc.want)
			}
			e3.Close()
			e128.Close()
		}
	}
}
