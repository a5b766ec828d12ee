// Package certificate loads APNs client certificates from PKCS#12 files.
package certificate

import (
	"crypto/tls"
	"fmt"
	"os"

	"software.sslmate.com/src/go-pkcs12"
)

// LoadP12File loads a tls.Certificate for an APNs connection from the p12
// file at path, decrypted with password.
//
// The leaf certificate is placed first in the chain, followed by any
// intermediate CA certificates present in the file. For APNs the leaf alone
// is usually sufficient; the CAs only matter when the TLS handshake requires
// the full chain.
func LoadP12File(path, password string) (*tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read p12 file %q: %w", path, err)
	}

	prikey, cert, caCerts, err := pkcs12.DecodeChain(data, password)
	if err != nil {
		return nil, fmt.Errorf("failed to decode p12 file: %w", err)
	}

	tlsCert := tls.Certificate{
		Certificate: [][]byte{cert.Raw},
		PrivateKey:  prikey,
	}
	for _, caCert := range caCerts {
		tlsCert.Certificate = append(tlsCert.Certificate, caCert.Raw)
	}

	return &tlsCert, nil
}
