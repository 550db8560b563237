package response

import "testing"

func TestBuildPagination(t *testing.T) {
	cases := []struct {
		name      string
		page      int
		pageSize  int
		total     int64
		totalPage int64
		hasMore   bool
	}{
		{"partial last page", 1, 8, 10, 2, true},
		{"last page", 2, 8, 10, 2, false},
		{"exact multiple", 2, 8, 16, 2, false},
		{"single page", 1, 8, 3, 1, false},
		{"empty", 1, 8, 0, 0, false},
		{"past the end", 5, 8, 10, 2, false},
	}
	for _, tc := range cases {
		got := BuildPagination(tc.page, tc.pageSize, tc.total)
		if got.TotalPage != tc.totalPage {
			t.Fatalf("%s: total page want %d got %d", tc.name, tc.totalPage, got.TotalPage)
		}
		if got.HasMore != tc.hasMore {
			t.Fatalf("%s: has more want %v got %v", tc.name, tc.hasMore, got.HasMore)
		}
		if got.Total != tc.total || got.Page != tc.page || got.PageSize != tc.pageSize {
			t.Fatalf("%s: echo fields mismatch: %+v", tc.name, got)
		}
	}
}

func TestBuildPaginationZeroPageSize(t *testing.T) {
	got := BuildPagination(1, 0, 10)
	if got.TotalPage != 0 {
		t.Fatalf("zero page size should produce zero total pages, got %d", got.TotalPage)
	}
	if got.HasMore {
		t.Fatalf("zero page size should never have more")
	}
}
