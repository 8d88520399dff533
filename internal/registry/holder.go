package registry

import "sync"

// Holder 持有进程级的单例绑定。
// 任意时刻至多存在一个活跃的 Registry；首次 Instance 调用时惰性创建。
type Holder struct {
	mu   sync.Mutex
	opts []Option
	cur  *Registry
}

// NewHolder 创建一个处于 Uninitialized 状态的 Holder，opts 用于之后创建的每个登记簿。
func NewHolder(opts ...Option) *Holder {
	return &Holder{opts: opts}
}

// Instance 返回共享登记簿，不存在时创建。
// 在两次 Destroy 之间的所有调用返回同一个实例。
func (h *Holder) Instance() *Registry {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cur == nil {
		h.cur = New(h.opts...)
		h.cur.log.Debug("Created registry")
	}
	return h.cur
}

// Destroy 释放当前登记簿并清除绑定。没有活跃实例时为空操作。
// 之后的 Instance 调用会得到一个全新的空登记簿；旧句柄上的追加返回 domain.ErrRegistryReleased。
func (h *Holder) Destroy() {
	h.mu.Lock()
	cur := h.cur
	h.cur = nil
	h.mu.Unlock()

	if cur != nil {
		cur.release()
	}
}

// Active 报告当前是否存在活跃登记簿。
func (h *Holder) Active() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cur != nil
}

// SetOptions 替换之后创建登记簿时使用的选项，不影响已存在的实例。
func (h *Holder) SetOptions(opts ...Option) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.opts = opts
}

var std = NewHolder()

// StandardHolder 返回包级函数使用的标准 Holder。
func StandardHolder() *Holder { return std }

// SetDefaultOptions 设置标准 Holder 创建登记簿时使用的选项。
func SetDefaultOptions(opts ...Option) { std.SetOptions(opts...) }

// Instance 返回标准 Holder 的共享登记簿。
func Instance() *Registry { return std.Instance() }

// Destroy 销毁标准 Holder 的共享登记簿。
func Destroy() { std.Destroy() }
