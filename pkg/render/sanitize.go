package render

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicyInst *bluemonday.Policy
)

// contentPolicy sanitises admin-authored rich text (preacher bios, markdown
// descriptions). UGC policy plus the class attribute the stylesheet targets.
func contentPolicy() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowAttrs("class").OnElements("p", "span", "div", "blockquote")
		contentPolicyInst = policy
	})
	return contentPolicyInst
}
