package service

// framingVariant describes one way a previous implementation packaged the
// authentication tag relative to the ciphertext. Earlier clients disagreed on
// the packaging, so the legacy decrypt path tries each variant in order.
type framingVariant struct {
	name     string
	assemble func(ciphertext, tag []byte) []byte
}

// framingVariants is the ordered list of known tag packagings. The canonical
// tag-appended framing comes first; tag-prepended exists only for importing
// data written by the legacy client.
var framingVariants = []framingVariant{
	{name: "tag-appended", assemble: assembleTagAppended},
	{name: "tag-prepended", assemble: assembleTagPrepended},
}

func assembleTagAppended(ciphertext, tag []byte) []byte {
	combined := make([]byte, 0, len(ciphertext)+len(tag))
	combined = append(combined, ciphertext...)
	return append(combined, tag...)
}

func assembleTagPrepended(ciphertext, tag []byte) []byte {
	combined := make([]byte, 0, len(ciphertext)+len(tag))
	combined = append(combined, tag...)
	return append(combined, ciphertext...)
}
