// Package domain defines the customers and employees of the dealership.
package domain

// DocumentType enumerates the identity documents accepted for customers and
// employees.
type DocumentType string

const (
	DocumentDNI           DocumentType = "DNI"
	DocumentCedula        DocumentType = "CEDULA"
	DocumentPassport      DocumentType = "PASSPORT"
	DocumentDriverLicense DocumentType = "DRIVER_LICENSE"
)

// Valid reports whether the document type is empty or one of the known values.
func (t DocumentType) Valid() bool {
	switch t {
	case "", DocumentDNI, DocumentCedula, DocumentPassport, DocumentDriverLicense:
		return true
	}
	return false
}
