package review

// Ref 导航序列中一条记录的稳定坐标：(球队 source_idx, 队内下标)
type Ref struct {
	TeamIdx   int
	PlayerIdx int
}

// Sequence 打开详情时冻结的导航序列
// 之后的过滤/排序变化不影响它，翻到头尾即止，越界打开是 no-op
type Sequence struct {
	refs []Ref
	pos  int
}

// NewSequence 从当前可见行集冻结一条序列；pos 越界返回 nil
func NewSequence(refs []Ref, pos int) *Sequence {
	if len(refs) == 0 || pos < 0 || pos >= len(refs) {
		return nil
	}
	frozen := make([]Ref, len(refs))
	copy(frozen, refs)
	return &Sequence{refs: frozen, pos: pos}
}

// Current 当前记录坐标
func (s *Sequence) Current() Ref {
	return s.refs[s.pos]
}

// Pos 当前位置（0 起）
func (s *Sequence) Pos() int {
	return s.pos
}

// Len 序列长度
func (s *Sequence) Len() int {
	return len(s.refs)
}

// HasPrev 是否能后退
func (s *Sequence) HasPrev() bool {
	return s.pos > 0
}

// HasNext 是否能前进
func (s *Sequence) HasNext() bool {
	return s.pos < len(s.refs)-1
}

// Prev 后退一条；在开头是 no-op，返回是否移动
func (s *Sequence) Prev() bool {
	if !s.HasPrev() {
		return false
	}
	s.pos--
	return true
}

// Next 前进一条；在末尾是 no-op，返回是否移动
func (s *Sequence) Next() bool {
	if !s.HasNext() {
		return false
	}
	s.pos++
	return true
}
