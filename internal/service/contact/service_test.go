package contact

import (
	"strings"
	"testing"

	"cm_contact_server/internal/dao/mysql/repository"
	"cm_contact_server/internal/dto/request"
	"cm_contact_server/internal/model"
	"cm_contact_server/pkg/errorx"
)

// stubContactRepo 联系人仓储打桩，各方法可按用例替换
type stubContactRepo struct {
	findByIDAndUserID func(contactID, userID uint) (*model.Contact, error)
	searchPage        func(userID uint, term string, offset, limit int) ([]model.Contact, error)
	countSearch       func(userID uint, term string) (int64, error)
	create            func(contact *model.Contact) error
	updateFields      func(contactID, userID uint, firstName, lastName, phone, email string) error
	countDuplicates   func(userID, excludeContactID uint, email, phone string) (int64, error)
	deleteScoped      func(contactID, userID uint) (int64, error)
}

func (s *stubContactRepo) FindByIDAndUserID(contactID, userID uint) (*model.Contact, error) {
	return s.findByIDAndUserID(contactID, userID)
}
func (s *stubContactRepo) SearchPage(userID uint, term string, offset, limit int) ([]model.Contact, error) {
	return s.searchPage(userID, term, offset, limit)
}
func (s *stubContactRepo) CountSearch(userID uint, term string) (int64, error) {
	return s.countSearch(userID, term)
}
func (s *stubContactRepo) Create(contact *model.Contact) error {
	return s.create(contact)
}
func (s *stubContactRepo) UpdateFields(contactID, userID uint, firstName, lastName, phone, email string) error {
	return s.updateFields(contactID, userID, firstName, lastName, phone, email)
}
func (s *stubContactRepo) CountDuplicates(userID, excludeContactID uint, email, phone string) (int64, error) {
	return s.countDuplicates(userID, excludeContactID, email, phone)
}
func (s *stubContactRepo) DeleteScoped(contactID, userID uint) (int64, error) {
	return s.deleteScoped(contactID, userID)
}

func newTestService(stub *stubContactRepo) *contactService {
	return NewContactService(&repository.Repositories{Contact: stub})
}

func makeContacts(n int) []model.Contact {
	rows := make([]model.Contact, n)
	for i := range rows {
		rows[i] = model.Contact{ID: uint(i + 1), FirstName: "A", LastName: "B"}
	}
	return rows
}

func TestSearchTermLengthBoundary(t *testing.T) {
	stub := &stubContactRepo{
		searchPage: func(userID uint, term string, offset, limit int) ([]model.Contact, error) {
			return nil, nil
		},
		countSearch: func(userID uint, term string) (int64, error) { return 0, nil },
	}
	svc := newTestService(stub)

	// 正好 100 个字符可以通过
	req := request.SearchContactsRequest{UserId: 1, Search: strings.Repeat("a", 100)}
	if _, err := svc.Search(req); err != nil {
		t.Fatalf("100-char term should pass, got %v", err)
	}

	// 101 个字符被拒绝
	req.Search = strings.Repeat("a", 101)
	_, err := svc.Search(req)
	if errorx.GetCode(err) != errorx.CodeInvalidInput {
		t.Fatalf("101-char term: want CodeInvalidInput, got %v", err)
	}

	// 按字符数而不是字节数计算
	req.Search = strings.Repeat("汉", 100)
	if _, err := svc.Search(req); err != nil {
		t.Fatalf("100-rune multibyte term should pass, got %v", err)
	}
}

func TestSearchPageAndLimitClamps(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		wantOffset int
		wantLimit  int // 传给仓储的 limit（含多取的一行）
	}{
		{"defaults", 0, 0, 0, 11},
		{"negative page", -3, 10, 0, 11},
		{"negative limit", 1, -5, 0, 2},
		{"over max limit", 2, 500, 100, 101},
		{"normal", 3, 20, 40, 21},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotOffset, gotLimit int
			stub := &stubContactRepo{
				searchPage: func(userID uint, term string, offset, limit int) ([]model.Contact, error) {
					gotOffset, gotLimit = offset, limit
					return nil, nil
				},
				countSearch: func(userID uint, term string) (int64, error) { return 0, nil },
			}
			svc := newTestService(stub)

			_, err := svc.Search(request.SearchContactsRequest{UserId: 1, Page: tc.page, Limit: tc.limit})
			if err != nil {
				t.Fatal(err)
			}
			if gotOffset != tc.wantOffset || gotLimit != tc.wantLimit {
				t.Fatalf("got offset=%d limit=%d, want offset=%d limit=%d",
					gotOffset, gotLimit, tc.wantOffset, tc.wantLimit)
			}
		})
	}
}

func TestSearchHasNextPage(t *testing.T) {
	// 仓储返回 limit+1 行，说明还有下一页，结果截断到 limit
	stub := &stubContactRepo{
		searchPage: func(userID uint, term string, offset, limit int) ([]model.Contact, error) {
			return makeContacts(limit), nil
		},
		countSearch: func(userID uint, term string) (int64, error) { return 25, nil },
	}
	svc := newTestService(stub)

	res, err := svc.Search(request.SearchContactsRequest{UserId: 1, Page: 1, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Pagination.HasNextPage {
		t.Fatal("want hasNextPage=true when repo returns limit+1 rows")
	}
	if len(res.Results) != 10 {
		t.Fatalf("results should be trimmed to limit, got %d", len(res.Results))
	}
	if res.Pagination.TotalCount != 25 || res.Pagination.TotalPages != 3 {
		t.Fatalf("want totalCount=25 totalPages=3, got %d/%d",
			res.Pagination.TotalCount, res.Pagination.TotalPages)
	}
}

func TestSearchLastPage(t *testing.T) {
	stub := &stubContactRepo{
		searchPage: func(userID uint, term string, offset, limit int) ([]model.Contact, error) {
			return makeContacts(5), nil
		},
		countSearch: func(userID uint, term string) (int64, error) { return 25, nil },
	}
	svc := newTestService(stub)

	res, err := svc.Search(request.SearchContactsRequest{UserId: 1, Page: 3, Limit: 10})
	if err != nil {
		t.Fatal(err)
	}
	if res.Pagination.HasNextPage {
		t.Fatal("want hasNextPage=false on last page")
	}
	if res.Pagination.CurrentPage != 3 {
		t.Fatalf("want currentPage=3, got %d", res.Pagination.CurrentPage)
	}
}

func TestSearchEmptyResultTotalPages(t *testing.T) {
	stub := &stubContactRepo{
		searchPage: func(userID uint, term string, offset, limit int) ([]model.Contact, error) {
			return nil, nil
		},
		countSearch: func(userID uint, term string) (int64, error) { return 0, nil },
	}
	svc := newTestService(stub)

	res, err := svc.Search(request.SearchContactsRequest{UserId: 1})
	if err != nil {
		t.Fatal(err)
	}
	// 没有结果时 totalPages 也至少是 1
	if res.Pagination.TotalPages != 1 {
		t.Fatalf("want totalPages=1 for empty result, got %d", res.Pagination.TotalPages)
	}
	if res.Results == nil || len(res.Results) != 0 {
		t.Fatal("results should be an empty slice, not nil")
	}
}

func TestAddContact(t *testing.T) {
	stub := &stubContactRepo{
		create: func(contact *model.Contact) error {
			contact.ID = 42
			if contact.FirstName != "John" || contact.LastName != "Doe" {
				t.Fatalf("names not trimmed: %q %q", contact.FirstName, contact.LastName)
			}
			return nil
		},
	}
	svc := newTestService(stub)

	id, err := svc.Add(request.AddContactRequest{
		UserId: 1, FirstName: "  John ", LastName: " Doe ",
	})
	if err != nil {
		t.Fatal(err)
	}
	if id != 42 {
		t.Fatalf("want id=42, got %d", id)
	}
}

func TestAddContactBlankName(t *testing.T) {
	svc := newTestService(&stubContactRepo{})
	_, err := svc.Add(request.AddContactRequest{UserId: 1, FirstName: "   ", LastName: "Doe"})
	if errorx.GetCode(err) != errorx.CodeInvalidSchema {
		t.Fatalf("want CodeInvalidSchema for blank first name, got %v", err)
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateContactNotOwned(t *testing.T) {
	stub := &stubContactRepo{
		findByIDAndUserID: func(contactID, userID uint) (*model.Contact, error) {
			return nil, errorx.New(errorx.CodeNotFound, "contact not found")
		},
	}
	svc := newTestService(stub)

	err := svc.Update(request.UpdateContactRequest{
		UserId: 1, ContactId: 7, FirstName: "A", LastName: "B",
		Phone: strPtr(""), Email: strPtr(""),
	})
	if errorx.GetCode(err) != errorx.CodeContactNotExist {
		t.Fatalf("want CodeContactNotExist for foreign contact, got %v", err)
	}
}

func TestUpdateContactDuplicate(t *testing.T) {
	stub := &stubContactRepo{
		findByIDAndUserID: func(contactID, userID uint) (*model.Contact, error) {
			return &model.Contact{ID: contactID, UserId: userID}, nil
		},
		countDuplicates: func(userID, excludeContactID uint, email, phone string) (int64, error) {
			return 1, nil
		},
	}
	svc := newTestService(stub)

	err := svc.Update(request.UpdateContactRequest{
		UserId: 1, ContactId: 7, FirstName: "A", LastName: "B",
		Phone: strPtr("555-1234"), Email: strPtr("a@b.com"),
	})
	if errorx.GetCode(err) != errorx.CodeContactExists {
		t.Fatalf("want CodeContactExists, got %v", err)
	}
}

func TestUpdateContactSuccess(t *testing.T) {
	var updated bool
	stub := &stubContactRepo{
		findByIDAndUserID: func(contactID, userID uint) (*model.Contact, error) {
			return &model.Contact{ID: contactID, UserId: userID}, nil
		},
		countDuplicates: func(userID, excludeContactID uint, email, phone string) (int64, error) {
			if excludeContactID != 7 {
				t.Fatalf("duplicate check must exclude the contact itself, got %d", excludeContactID)
			}
			return 0, nil
		},
		updateFields: func(contactID, userID uint, firstName, lastName, phone, email string) error {
			updated = true
			if phone != "" || email != "" {
				t.Fatalf("empty phone/email should stay empty, got %q %q", phone, email)
			}
			return nil
		},
	}
	svc := newTestService(stub)

	err := svc.Update(request.UpdateContactRequest{
		UserId: 1, ContactId: 7, FirstName: "A", LastName: "B",
		Phone: strPtr("  "), Email: strPtr(""),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !updated {
		t.Fatal("UpdateFields was not called")
	}
}

func TestDeleteContact(t *testing.T) {
	affected := int64(1)
	stub := &stubContactRepo{
		deleteScoped: func(contactID, userID uint) (int64, error) {
			defer func() { affected = 0 }()
			return affected, nil
		},
	}
	svc := newTestService(stub)

	// 第一次删除成功
	if err := svc.Delete(1, 7); err != nil {
		t.Fatal(err)
	}
	// 重复删除同一条记录返回联系人不存在
	err := svc.Delete(1, 7)
	if errorx.GetCode(err) != errorx.CodeContactNotExist {
		t.Fatalf("want CodeContactNotExist for second delete, got %v", err)
	}
}
