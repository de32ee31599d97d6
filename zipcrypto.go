// SPDX-License-Identifier: MPL-2.0

package arclist

import (
	"archive/zip"
	"hash/crc32"
	"io"
)

// Traditional PKWARE encryption prefixes each entry's data with a 12 byte
// header whose last byte must match a check byte derived from the entry
// metadata. Decrypting those 12 bytes is enough to verify a password; the
// payload itself stays untouched.

// zipCryptoKeys is the three-register keystream state of traditional PKWARE
// encryption.
type zipCryptoKeys [3]uint32

func newZipCryptoKeys(password []byte) zipCryptoKeys {
	k := zipCryptoKeys{0x12345678, 0x23456789, 0x34567890}
	for _, b := range password {
		k.update(b)
	}
	return k
}

func crc32Update(crc uint32, b byte) uint32 {
	return crc32.IEEETable[byte(crc)^b] ^ (crc >> 8)
}

func (k *zipCryptoKeys) update(b byte) {
	k[0] = crc32Update(k[0], b)
	k[1] = (k[1]+(k[0]&0xff))*134775813 + 1
	k[2] = crc32Update(k[2], byte(k[1]>>24))
}

func (k *zipCryptoKeys) decryptByte(c byte) byte {
	t := uint16(k[2]|2) & 0xffff
	p := c ^ byte((uint32(t)*uint32(t^1))>>8)
	k.update(p)
	return p
}

// verifyZipPassword checks password against the 12 byte encryption header of
// f. The check byte is the high byte of the CRC, or of the DOS modification
// time when the entry uses a trailing data descriptor.
func verifyZipPassword(f *zip.File, password []byte) (bool, *Error) {
	raw, err := f.OpenRaw()
	if err != nil {
		return false, ensureError(err)
	}

	var header [12]byte
	if _, err := io.ReadFull(raw, header[:]); err != nil {
		return false, invalidArchiveError(Zip, "encrypted entry "+f.Name+" is shorter than its encryption header")
	}

	keys := newZipCryptoKeys(password)
	var last byte
	for _, c := range header {
		last = keys.decryptByte(c)
	}

	check := byte(f.CRC32 >> 24)
	if f.Flags&zipFlagDataDescriptor != 0 {
		check = byte(f.ModifiedTime >> 8)
	}
	return last == check, nil
}
