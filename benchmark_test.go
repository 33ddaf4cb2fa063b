package scheme

import "testing"

func BenchmarkBuildTree10k(b *testing.B) {
	objects := randomObjects(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = BuildTree(objects, 8, 8)
	}
}

func BenchmarkQuery10k(b *testing.B) {
	objects := randomObjects(10000)
	tree := BuildTree(objects, 8, 8)
	view := Rect{-100, -100, 100, 100}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tree.Query(view)
	}
}

func BenchmarkStorageRebuildAfterMutation(b *testing.B) {
	s := newStorage(8, 8)
	for _, o := range randomObjects(5000) {
		s.AddObject(o)
	}
	extra := box(0, 0, 1, 1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.AddObject(extra)
		_ = s.GetTree()
		s.RemoveObject(extra)
	}
}
