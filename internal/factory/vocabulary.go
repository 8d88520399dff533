// Package factory 实现日志条目工厂。
// 工厂根据类别标签与消息构造带标签的 domain.LogEntry，标签词汇表可配置。
package factory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/oriys/logbook/internal/domain"
)

// 内置词汇表名称
const (
	// PresetEnglish 缩写标签：info、warn、err（默认）
	PresetEnglish = "en"
	// PresetPolish 波兰语标签：info、ostrzezenie、blad
	PresetPolish = "pl"
)

var presets = map[string]map[string]domain.Category{
	PresetEnglish: {
		"info": domain.CategoryInfo,
		"warn": domain.CategoryWarning,
		"err":  domain.CategoryError,
	},
	PresetPolish: {
		"info":        domain.CategoryInfo,
		"ostrzezenie": domain.CategoryWarning,
		"blad":        domain.CategoryError,
	},
}

// Presets 返回全部内置词汇表名称（已排序）。
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Vocabulary 是类别标签到类别的映射。
// 创建后只读，可被多个 goroutine 并发使用。
type Vocabulary struct {
	name     string
	tags     map[string]domain.Category
	foldCase bool
}

// VocabularyOption 修改词汇表行为。
type VocabularyOption func(*Vocabulary)

// WithCaseFold 使标签匹配忽略大小写。
func WithCaseFold() VocabularyOption {
	return func(v *Vocabulary) { v.foldCase = true }
}

// WithAliases 追加别名，键为标签，值为类别规范名称（info、warning、error）。
func WithAliases(aliases map[string]string) VocabularyOption {
	return func(v *Vocabulary) {
		for tag, name := range aliases {
			c, ok := domain.ParseCategory(name)
			if !ok {
				// 保留无效类别，交给 validate 报错
				c = 0
			}
			v.tags[tag] = c
		}
	}
}

// NewVocabulary 基于给定映射创建词汇表。
// 每个类别至少需要一个标签，标签不能为空。
func NewVocabulary(name string, tags map[string]domain.Category, opts ...VocabularyOption) (*Vocabulary, error) {
	v := &Vocabulary{name: name, tags: make(map[string]domain.Category, len(tags))}
	for tag, c := range tags {
		v.tags[tag] = c
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.foldCase {
		folded := make(map[string]domain.Category, len(v.tags))
		for tag, c := range v.tags {
			key := strings.ToLower(tag)
			if prev, exists := folded[key]; exists && prev != c {
				return nil, fmt.Errorf("%w: tag %q maps to both %s and %s", domain.ErrInvalidVocabulary, key, prev, c)
			}
			folded[key] = c
		}
		v.tags = folded
	}
	if err := v.validate(); err != nil {
		return nil, err
	}
	return v, nil
}

// Preset 返回内置词汇表，可选地叠加别名等选项。
func Preset(name string, opts ...VocabularyOption) (*Vocabulary, error) {
	tags, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset %q (available: %s)",
			domain.ErrInvalidVocabulary, name, strings.Join(Presets(), ", "))
	}
	return NewVocabulary(name, tags, opts...)
}

func (v *Vocabulary) validate() error {
	covered := make(map[domain.Category]bool)
	for tag, c := range v.tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("%w: empty tag", domain.ErrInvalidVocabulary)
		}
		if !c.Valid() {
			return fmt.Errorf("%w: tag %q has no valid category", domain.ErrInvalidVocabulary, tag)
		}
		covered[c] = true
	}
	for _, c := range domain.Categories() {
		if !covered[c] {
			return fmt.Errorf("%w: no tag for category %s", domain.ErrInvalidVocabulary, c)
		}
	}
	return nil
}

// Name 返回词汇表名称。
func (v *Vocabulary) Name() string { return v.name }

// Lookup 查找标签对应的类别。
func (v *Vocabulary) Lookup(tag string) (domain.Category, bool) {
	if v.foldCase {
		tag = strings.ToLower(tag)
	}
	c, ok := v.tags[tag]
	return c, ok
}

// Binding 是词汇表中的一条标签绑定。
type Binding struct {
	Tag      string `json:"tag" yaml:"tag"`
	Category string `json:"category" yaml:"category"`
	Label    string `json:"label" yaml:"label"`
}

// Bindings 按类别、再按标签排序返回全部绑定。
func (v *Vocabulary) Bindings() []Binding {
	tags := make([]string, 0, len(v.tags))
	for tag := range v.tags {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		ci, cj := v.tags[tags[i]], v.tags[tags[j]]
		if ci == cj {
			return tags[i] < tags[j]
		}
		return ci < cj
	})

	out := make([]Binding, 0, len(tags))
	for _, tag := range tags {
		c := v.tags[tag]
		out = append(out, Binding{Tag: tag, Category: c.String(), Label: c.Label()})
	}
	return out
}
