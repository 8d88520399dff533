package factory

import (
	"fmt"

	"github.com/oriys/logbook/internal/domain"
)

// Factory 根据类别标签构造日志条目。
// 工厂是纯函数式的：除返回值外没有副作用。
type Factory struct {
	vocab *Vocabulary
}

// New 使用给定词汇表创建工厂。vocab 为 nil 时使用默认的 en 词汇表。
func New(vocab *Vocabulary) *Factory {
	if vocab == nil {
		vocab = mustPreset(PresetEnglish)
	}
	return &Factory{vocab: vocab}
}

// Default 返回使用 en 词汇表的工厂。
func Default() *Factory {
	return New(nil)
}

// Vocabulary 返回工厂使用的词汇表。
func (f *Factory) Vocabulary() *Vocabulary { return f.vocab }

// Create 构造一条日志条目。
// 标签无法识别时返回包装了 domain.ErrInvalidCategory 的错误，并注明该标签。
func (f *Factory) Create(tag, message string) (domain.LogEntry, error) {
	c, ok := f.vocab.Lookup(tag)
	if !ok {
		return domain.LogEntry{}, fmt.Errorf("%w: %q", domain.ErrInvalidCategory, tag)
	}
	return domain.NewLogEntry(c, message), nil
}

func mustPreset(name string) *Vocabulary {
	v, err := Preset(name)
	if err != nil {
		panic(err)
	}
	return v
}
