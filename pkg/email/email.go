package email

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// MaxAddressLength is the longest address accepted in a forward path.
const MaxAddressLength = 254

// IsValidAddress reports whether addr is a syntactically valid mailbox of the
// form local@domain where the domain has at least one dot. Surrounding
// whitespace makes an address invalid; nothing is trimmed.
func IsValidAddress(addr string) bool {
	if addr == "" || len(addr) > MaxAddressLength {
		return false
	}
	if strings.TrimSpace(addr) != addr {
		return false
	}
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 || at == len(addr)-1 {
		return false
	}
	domain := addr[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return govalidator.IsEmail(addr)
}
