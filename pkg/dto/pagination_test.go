package dto

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/sgaunet/pagewindow/pkg/window"
)

func mustPaginationInfo(t *testing.T, totalItems int64, pageSize, currentPage int, opts WindowOptions) PaginationInfo {
	t.Helper()
	p, err := NewPaginationInfo(totalItems, pageSize, currentPage, opts)
	if err != nil {
		t.Fatalf("NewPaginationInfo(%d, %d, %d) unexpected error: %v", totalItems, pageSize, currentPage, err)
	}
	return p
}

func TestNewPaginationInfo_ZeroItems(t *testing.T) {
	p := mustPaginationInfo(t, 0, 50, 1, DefaultWindowOptions())

	if p.TotalItems != 0 {
		t.Errorf("Expected TotalItems=0, got %d", p.TotalItems)
	}
	if p.TotalPages != 1 {
		t.Errorf("Expected TotalPages=1 for zero items, got %d", p.TotalPages)
	}
	if p.CurrentPage != 1 {
		t.Errorf("Expected CurrentPage=1, got %d", p.CurrentPage)
	}
	if p.HasPrevious {
		t.Error("Expected HasPrevious=false for page 1")
	}
	if p.HasNext {
		t.Error("Expected HasNext=false for single page")
	}
	if p.StartIndex != 0 || p.EndIndex != 0 {
		t.Errorf("Expected StartIndex=0 EndIndex=0, got %d %d", p.StartIndex, p.EndIndex)
	}
	if p.WindowBegin != 1 || p.WindowEnd != 1 {
		t.Errorf("Expected window [1,1], got [%d,%d]", p.WindowBegin, p.WindowEnd)
	}
	if !slices.Equal(p.Pages, []int{1}) {
		t.Errorf("Expected Pages=[1], got %v", p.Pages)
	}
}

func TestNewPaginationInfo_SinglePage(t *testing.T) {
	p := mustPaginationInfo(t, 25, 50, 1, DefaultWindowOptions())

	if p.TotalPages != 1 {
		t.Errorf("Expected TotalPages=1, got %d", p.TotalPages)
	}
	if p.EndIndex != 25 {
		t.Errorf("Expected EndIndex=25, got %d", p.EndIndex)
	}
	if p.WindowBegin != 1 || p.WindowEnd != 1 {
		t.Errorf("Expected window [1,1], got [%d,%d]", p.WindowBegin, p.WindowEnd)
	}
}

func TestNewPaginationInfo_SectionWindow(t *testing.T) {
	// 320 / 25 = 12.8 => 13 pages, block 6..10 holds page 7
	p := mustPaginationInfo(t, 320, 25, 7, WindowOptions{Size: 5, Strategy: window.StrategySection})

	if p.TotalPages != 13 {
		t.Errorf("Expected TotalPages=13, got %d", p.TotalPages)
	}
	if p.CurrentPage != 7 {
		t.Errorf("Expected CurrentPage=7, got %d", p.CurrentPage)
	}
	if p.WindowBegin != 6 || p.WindowEnd != 10 {
		t.Errorf("Expected window [6,10], got [%d,%d]", p.WindowBegin, p.WindowEnd)
	}
	if !slices.Equal(p.Pages, []int{6, 7, 8, 9, 10}) {
		t.Errorf("Expected Pages=[6 7 8 9 10], got %v", p.Pages)
	}
	if p.StartIndex != 150 || p.EndIndex != 175 {
		t.Errorf("Expected indexes 150..175, got %d..%d", p.StartIndex, p.EndIndex)
	}
	if p.Strategy != window.StrategySection {
		t.Errorf("Expected Strategy=section, got %s", p.Strategy)
	}
}

func TestNewPaginationInfo_CenterWindow(t *testing.T) {
	p := mustPaginationInfo(t, 320, 25, 7, WindowOptions{Size: 5, Strategy: window.StrategyCenter})

	if p.WindowBegin != 5 || p.WindowEnd != 9 {
		t.Errorf("Expected window [5,9], got [%d,%d]", p.WindowBegin, p.WindowEnd)
	}
	if !p.HasPrevious || !p.HasNext {
		t.Errorf("Expected HasPrevious and HasNext for middle page, got %v %v", p.HasPrevious, p.HasNext)
	}
}

func TestNewPaginationInfo_PartialLastPage(t *testing.T) {
	// 103 items / 50 per page = 3 pages, last page holds 3 items
	p := mustPaginationInfo(t, 103, 50, 3, DefaultWindowOptions())

	if p.TotalPages != 3 {
		t.Errorf("Expected TotalPages=3, got %d", p.TotalPages)
	}
	if p.StartIndex != 100 {
		t.Errorf("Expected StartIndex=100, got %d", p.StartIndex)
	}
	if p.EndIndex != 103 {
		t.Errorf("Expected EndIndex=103, got %d", p.EndIndex)
	}
	if p.HasNext {
		t.Error("Expected HasNext=false on last page")
	}
}

func TestNewPaginationInfo_IndexesNearIntLimit(t *testing.T) {
	// Two pages, the second one shorter: StartIndex+PageSize exceeds math.MaxInt
	pageSize := math.MaxInt/2 + 1
	p := mustPaginationInfo(t, int64(math.MaxInt), pageSize, 2, DefaultWindowOptions())

	if p.TotalPages != 2 {
		t.Errorf("Expected TotalPages=2, got %d", p.TotalPages)
	}
	if p.StartIndex != pageSize {
		t.Errorf("Expected StartIndex=%d, got %d", pageSize, p.StartIndex)
	}
	if p.EndIndex != math.MaxInt {
		t.Errorf("Expected EndIndex=%d, got %d", math.MaxInt, p.EndIndex)
	}
	if p.EndIndex < p.StartIndex {
		t.Errorf("EndIndex %d before StartIndex %d", p.EndIndex, p.StartIndex)
	}
}

func TestNewPaginationInfo_OutOfRangePageIsClamped(t *testing.T) {
	tests := []struct {
		name        string
		currentPage int
		want        int
	}{
		{name: "page zero", currentPage: 0, want: 1},
		{name: "negative page", currentPage: -5, want: 1},
		{name: "page above last", currentPage: 10, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustPaginationInfo(t, 100, 50, tt.currentPage, DefaultWindowOptions())
			if p.CurrentPage != tt.want {
				t.Errorf("Expected CurrentPage=%d, got %d", tt.want, p.CurrentPage)
			}
		})
	}
}

func TestNewPaginationInfo_InvalidOptions(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		opts     WindowOptions
		wantErr  error
	}{
		{name: "zero page size", pageSize: 0, opts: DefaultWindowOptions(), wantErr: window.ErrInvalidConfiguration},
		{name: "zero window size", pageSize: 50, opts: WindowOptions{Size: 0, Strategy: window.StrategyCenter}, wantErr: window.ErrInvalidConfiguration},
		{name: "unknown strategy", pageSize: 50, opts: WindowOptions{Size: 5, Strategy: "sliding"}, wantErr: window.ErrUnknownStrategy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPaginationInfo(100, tt.pageSize, 1, tt.opts)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
