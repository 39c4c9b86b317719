/*
Package basexml implements BaseXML for XML 1.0, a binary-to-text encoding whose
output may be placed verbatim inside XML 1.0 character data.

The encoded form never contains the bytes NUL, CR, LF, '<', '>' or '&'. It uses
the TAB character and bytes above 0x7F, so the surrounding document should be
UTF-8 and the XML parser must not trim or normalize whitespace inside the
element. The expansion is 20% (40 input bits become 48 output bits), against
33% for base64.

Encoding works on chunks of 5 bytes. Each chunk is split into two 20-bit
groups; the second group starts with the low nibble of the third byte:

	chunk   AAAAAAAA BBBBBBBB CCCCcccc DDDDDDDD EEEEEEEE
	group 1 AAAAAAAA BBBBBBBB CCCC
	group 2                       cccc DDDDDDDD EEEEEEEE

Every group is written as 3 bytes using the first matching entry of a fixed,
ordered table of bit layouts (see Layout). Each layout reserves a few fixed
marker bits that keep the output away from the control range and from the
'<' and '>' code points; the decoder looks at the same marker bits to pick the
inverse layout. Payload bits can still form '&', which is swapped for TAB after
packing and swapped back before unpacking.

When the input length is not a multiple of 5 the last chunk is zero padded,
encoded in full and followed by the termination sequence

	0x3F 0x30|r 0x3F

where r (1 to 4) is the number of real bytes in the last chunk. Encoded data of
n source bytes is therefore 6*(n/5) bytes long, plus 9 when n%5 != 0.

Decoding is permissive: a group that matches no layout decodes to zero bits.
Only the termination sequence and the stream length are validated. Strict
decoding, which rejects such groups, is available through Encoding.Strict.

# Example

	"ABCDE"  ->  50 28 24 45 C6 94
	"A"      ->  C8 80 20 20 20 40 3F 31 3F
*/
package basexml
