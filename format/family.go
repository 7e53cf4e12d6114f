package format

import "fmt"

// Family groups formats that share a storage scheme.
type Family uint8

// Format families.
const (
	FamilyInvalid Family = iota
	FamilySRGB
	FamilyInt8
	FamilyInt16
	FamilyInt32
	FamilyHDR
	FamilyLumAlpha
	FamilyBGR
	FamilyPacked16
	FamilyPacked32
	FamilyARGB
	FamilyDepthStencil
	FamilyDXTC
	FamilyRGTC
	FamilyBPTC
	FamilyPVRTC
	FamilyETC1
	FamilyETC2
	FamilyEAC
	FamilyASTC
	FamilyVideo
	FamilyRemoved
	FamilyASTCHDR

	familyCount
)

// familyDesc holds static properties of a family.
type familyDesc struct {
	name       string
	compressed bool
	// ranged families occupy one contiguous run of values.
	// Depth/stencil is the one exception: D16_UNorm_S8_UInt was appended
	// after the compressed families.
	ranged bool
}

var familyDescs = [familyCount]familyDesc{
	FamilyInvalid:      {name: "Invalid"},
	FamilySRGB:         {name: "sRGB", ranged: true},
	FamilyInt8:         {name: "Int8", ranged: true},
	FamilyInt16:        {name: "Int16", ranged: true},
	FamilyInt32:        {name: "Int32", ranged: true},
	FamilyHDR:          {name: "HDR", ranged: true},
	FamilyLumAlpha:     {name: "LumAlpha", ranged: true},
	FamilyBGR:          {name: "BGR", ranged: true},
	FamilyPacked16:     {name: "Packed16", ranged: true},
	FamilyPacked32:     {name: "Packed32", ranged: true},
	FamilyARGB:         {name: "ARGB", ranged: true},
	FamilyDepthStencil: {name: "DepthStencil"},
	FamilyDXTC:         {name: "DXTC", compressed: true, ranged: true},
	FamilyRGTC:         {name: "RGTC", compressed: true, ranged: true},
	FamilyBPTC:         {name: "BPTC", compressed: true, ranged: true},
	FamilyPVRTC:        {name: "PVRTC", compressed: true, ranged: true},
	FamilyETC1:         {name: "ETC1", compressed: true, ranged: true},
	FamilyETC2:         {name: "ETC2", compressed: true, ranged: true},
	FamilyEAC:          {name: "EAC", compressed: true, ranged: true},
	FamilyASTC:         {name: "ASTC", compressed: true, ranged: true},
	FamilyVideo:        {name: "Video", ranged: true},
	FamilyRemoved:      {name: "Removed", ranged: true},
	FamilyASTCHDR:      {name: "ASTCHDR", compressed: true, ranged: true},
}

// Range is an inclusive run of format values.
type Range struct {
	First, Last PixelFormat
}

// Contains reports whether f lies within r.
func (r Range) Contains(f PixelFormat) bool {
	return f >= r.First && f <= r.Last
}

// Len returns the number of formats in r.
func (r Range) Len() int {
	return int(r.Last-r.First) + 1
}

// familyRanges is derived from infoTable during package initialization.
var familyRanges [familyCount]Range

func init() {
	if err := buildFamilyRanges(); err != nil {
		panic(err)
	}
}

// buildFamilyRanges computes the range of every ranged family and checks
// that no member lies outside it.
func buildFamilyRanges() error {
	var seen [familyCount]bool
	for f := None + 1; f <= Last; f++ {
		fam := infoTable[f].Family
		if fam == FamilyInvalid || fam >= familyCount {
			return fmt.Errorf("format: %v has no family", f)
		}
		if !seen[fam] {
			familyRanges[fam] = Range{First: f, Last: f}
			seen[fam] = true
			continue
		}
		r := &familyRanges[fam]
		if familyDescs[fam].ranged && f != r.Last+1 {
			return fmt.Errorf("format: family %v is not contiguous at %v", fam, f)
		}
		r.Last = f
	}
	for fam := FamilyInvalid + 1; fam < familyCount; fam++ {
		if !seen[fam] {
			return fmt.Errorf("format: family %v has no members", fam)
		}
	}
	return nil
}

// String returns the family name.
func (fam Family) String() string {
	if fam >= familyCount {
		return fmt.Sprintf("Family(%d)", uint8(fam))
	}
	return familyDescs[fam].name
}

// IsCompressed reports whether members of fam are block compressed.
func (fam Family) IsCompressed() bool {
	return fam < familyCount && familyDescs[fam].compressed
}

// Range returns the contiguous run of values held by fam.
// ok is false for families that are not contiguous or have no members.
func (fam Family) Range() (r Range, ok bool) {
	if fam == FamilyInvalid || fam >= familyCount || !familyDescs[fam].ranged {
		return Range{}, false
	}
	return familyRanges[fam], true
}

// Contains reports whether f is a member of fam.
func (fam Family) Contains(f PixelFormat) bool {
	if r, ok := fam.Range(); ok {
		return r.Contains(f)
	}
	return f.IsValid() && f.Family() == fam
}

// Families returns every family except FamilyInvalid.
func Families() []Family {
	fams := make([]Family, 0, familyCount-1)
	for fam := FamilyInvalid + 1; fam < familyCount; fam++ {
		fams = append(fams, fam)
	}
	return fams
}

// ParseFamily returns the family with the given name.
func ParseFamily(name string) (Family, error) {
	for fam := FamilyInvalid + 1; fam < familyCount; fam++ {
		if familyDescs[fam].name == name {
			return fam, nil
		}
	}
	return FamilyInvalid, fmt.Errorf("format: unknown family %q", name)
}

// Family returns the family f belongs to, or FamilyInvalid for None and
// values outside the enumeration.
func (f PixelFormat) Family() Family {
	if !f.IsValid() {
		return FamilyInvalid
	}
	return infoTable[f].Family
}

// IsCompressed reports whether f is block compressed.
func (f PixelFormat) IsCompressed() bool { return f.Family().IsCompressed() }

// IsDepthStencil reports whether f holds depth and/or stencil data.
func (f PixelFormat) IsDepthStencil() bool { return f.Family() == FamilyDepthStencil }

// IsDXTC reports whether f is a DXT1/3/5 (BC1-3) format.
func (f PixelFormat) IsDXTC() bool { return FamilyDXTC.Contains(f) }

// IsBC reports whether f is any BCn format (DXTC, RGTC or BPTC).
func (f PixelFormat) IsBC() bool {
	return FamilyDXTC.Contains(f) || FamilyRGTC.Contains(f) || FamilyBPTC.Contains(f)
}

// IsPVRTC reports whether f is a PVRTC format.
func (f PixelFormat) IsPVRTC() bool { return FamilyPVRTC.Contains(f) }

// IsETC reports whether f is an ETC1 or ETC2 format.
func (f PixelFormat) IsETC() bool {
	return FamilyETC1.Contains(f) || FamilyETC2.Contains(f)
}

// IsEAC reports whether f is an EAC format.
func (f PixelFormat) IsEAC() bool { return FamilyEAC.Contains(f) }

// IsASTC reports whether f is an LDR ASTC format.
func (f PixelFormat) IsASTC() bool { return FamilyASTC.Contains(f) }

// IsASTCHDR reports whether f is an HDR ASTC format.
func (f PixelFormat) IsASTCHDR() bool { return FamilyASTCHDR.Contains(f) }
