package builtin

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"

	"github.com/hyperswine/sol/value"
)

// registerCrypto installs the hashing/encoding builtins grounded in
// the teacher's std/crypto.go, stdlib only (the teacher's own crypto
// file reaches for nothing beyond Go's crypto/* and encoding/base64).
func registerCrypto(r *Registry) {
	r.register(&value.Builtin{Name: "md5", MinArity: 1, MaxArity: 1, Invoke: hashBuiltin(func(b []byte) []byte { h := md5.Sum(b); return h[:] })})
	r.register(&value.Builtin{Name: "sha1", MinArity: 1, MaxArity: 1, Invoke: hashBuiltin(func(b []byte) []byte { h := sha1.Sum(b); return h[:] })})
	r.register(&value.Builtin{Name: "sha256", MinArity: 1, MaxArity: 1, Invoke: hashBuiltin(func(b []byte) []byte { h := sha256.Sum256(b); return h[:] })})
	r.register(&value.Builtin{Name: "base64_encode", MinArity: 1, MaxArity: 1, Invoke: builtinBase64Encode})
	r.register(&value.Builtin{Name: "base64_decode", MinArity: 1, MaxArity: 1, Invoke: builtinBase64Decode})
}

func hashBuiltin(fn func([]byte) []byte) func(value.Runtime, []value.Value) (value.Value, error) {
	return func(rt value.Runtime, args []value.Value) (value.Value, error) {
		s, ok := strArg(args[0])
		if !ok {
			return value.Err(&value.String{Value: "expects a string"}), nil
		}
		return &value.String{Value: hex.EncodeToString(fn([]byte(s)))}, nil
	}
}

func builtinBase64Encode(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok := strArg(args[0])
	if !ok {
		return value.Err(&value.String{Value: "base64_encode expects a string"}), nil
	}
	return &value.String{Value: base64.StdEncoding.EncodeToString([]byte(s))}, nil
}

func builtinBase64Decode(rt value.Runtime, args []value.Value) (value.Value, error) {
	s, ok := strArg(args[0])
	if !ok {
		return value.Err(&value.String{Value: "base64_decode expects a string"}), nil
	}
	out, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return value.Err(&value.String{Value: err.Error()}), nil
	}
	return value.Ok(&value.String{Value: string(out)}), nil
}
