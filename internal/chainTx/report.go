package chainTx

import "pump_launch/internal/common"

type ResultKind string

const (
	KindDirect ResultKind = "direct"
	KindBundle ResultKind = "bundle"
)

// Result 提交结果，只用于输出链接
type Result struct {
	Kind      ResultKind
	Signature string
	BundleID  string
}

// Report 返回浏览器链接
func Report(r Result) string {
	switch r.Kind {
	case KindBundle:
		return common.JITO_BUNDLE_URL + r.BundleID
	default:
		return common.SOLSCAN_TX_URL + r.Signature
	}
}
