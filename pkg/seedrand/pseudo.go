package seedrand

// Salt is prefixed to every PseudoRandom seed so that short sequential seeds
// such as 1, 2, 3 do not land on correlated hashes.
const Salt = "6555705619766379"

// PseudoRandom returns a value in [0,1) fixed by seed.
func PseudoRandom[S Seed](seed S) float64 {
	return NewString(Salt + seedString(seed)).Float64()
}

// PseudoRandomAny is PseudoRandom for seeds whose type is only known at run
// time.
func PseudoRandomAny(seed any) (float64, error) {
	s, err := SeedString(seed)
	if err != nil {
		return 0, err
	}
	return NewString(Salt + s).Float64(), nil
}
