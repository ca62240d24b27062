package repository

import (
	"fmt"
	"os"
	"testing"
	"time"

	"cm_contact_server/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// 集成测试：需要真实 MySQL
// 运行方式: CM_TEST_MYSQL_DSN="root:pwd@tcp(127.0.0.1:3306)/cm_test?charset=utf8mb4&parseTime=True" go test ./...
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("CM_TEST_MYSQL_DSN")
	if dsn == "" {
		t.Skip("CM_TEST_MYSQL_DSN not set, skipping MySQL integration test")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.AutoMigrate(&model.User{}, &model.Contact{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func seedContacts(t *testing.T, repos *Repositories, userID uint, n int) []uint {
	t.Helper()
	ids := make([]uint, 0, n)
	for i := 0; i < n; i++ {
		c := &model.Contact{
			UserId:    userID,
			FirstName: fmt.Sprintf("First%02d", i),
			LastName:  fmt.Sprintf("Last%02d", i),
			Phone:     fmt.Sprintf("555-01%02d", i),
			Email:     fmt.Sprintf("c%02d@example.com", i),
		}
		if err := repos.Contact.Create(c); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, c.ID)
	}
	return ids
}

func TestContactRepositoryScopedSearch(t *testing.T) {
	db := openTestDB(t)
	repos := NewRepositories(db)

	// 两个独立用户，互相不可见
	owner := uint(time.Now().UnixNano() % 1_000_000)
	other := owner + 1
	seedContacts(t, repos, owner, 15)
	seedContacts(t, repos, other, 3)

	t.Cleanup(func() {
		db.Where("user_id IN ?", []uint{owner, other}).Delete(&model.Contact{})
	})

	// 空搜索词返回该用户全部联系人
	total, err := repos.Contact.CountSearch(owner, "")
	if err != nil {
		t.Fatal(err)
	}
	if total != 15 {
		t.Fatalf("want 15 contacts for owner, got %d", total)
	}

	// 多取一行探测下一页
	rows, err := repos.Contact.SearchPage(owner, "", 0, 11)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 11 {
		t.Fatalf("want 11 rows (limit+1), got %d", len(rows))
	}
	for _, r := range rows {
		if r.UserId != owner {
			t.Fatalf("leaked contact of user %d into owner %d's results", r.UserId, owner)
		}
	}

	// 搜索词匹配 email
	matched, err := repos.Contact.SearchPage(owner, "c03@", 0, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(matched) != 1 || matched[0].Email != "c03@example.com" {
		t.Fatalf("unexpected search result: %+v", matched)
	}
}

func TestContactRepositoryStablePageBoundaries(t *testing.T) {
	db := openTestDB(t)
	repos := NewRepositories(db)

	// 13 个同名联系人：排序只能靠 id 兜底
	// 没有 id 兜底时，同名行在翻页边界可能重复或丢失
	owner := uint(time.Now().UnixNano()%1_000_000) + 4_000_000
	ids := make([]uint, 0, 13)
	for i := 0; i < 13; i++ {
		c := &model.Contact{
			UserId:    owner,
			FirstName: "Same",
			LastName:  "Name",
			Email:     fmt.Sprintf("same%02d@example.com", i),
		}
		if err := repos.Contact.Create(c); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, c.ID)
	}
	t.Cleanup(func() {
		db.Where("user_id = ?", owner).Delete(&model.Contact{})
	})

	// 同名行必须按 id 升序返回
	page1, err := repos.Contact.SearchPage(owner, "", 0, 5)
	if err != nil {
		t.Fatal(err)
	}
	page2, err := repos.Contact.SearchPage(owner, "", 5, 5)
	if err != nil {
		t.Fatal(err)
	}
	page3, err := repos.Contact.SearchPage(owner, "", 10, 5)
	if err != nil {
		t.Fatal(err)
	}

	var got []uint
	for _, rows := range [][]model.Contact{page1, page2, page3} {
		for _, r := range rows {
			got = append(got, r.ID)
		}
	}

	// 三页拼起来正好是全部 id，升序、不重不漏
	if len(got) != len(ids) {
		t.Fatalf("pages returned %d rows, want %d", len(got), len(ids))
	}
	for i, id := range got {
		if id != ids[i] {
			t.Fatalf("page boundary instability at position %d: got id=%d, want id=%d\nall: %v",
				i, id, ids[i], got)
		}
	}
}

func TestContactRepositoryDuplicatesAndDelete(t *testing.T) {
	db := openTestDB(t)
	repos := NewRepositories(db)

	owner := uint(time.Now().UnixNano()%1_000_000) + 2_000_000
	ids := seedContacts(t, repos, owner, 2)
	t.Cleanup(func() {
		db.Where("user_id = ?", owner).Delete(&model.Contact{})
	})

	// 把第一条的 email 改成第二条的 -> 重复
	dups, err := repos.Contact.CountDuplicates(owner, ids[0], "c01@example.com", "")
	if err != nil {
		t.Fatal(err)
	}
	if dups != 1 {
		t.Fatalf("want 1 duplicate, got %d", dups)
	}

	// 保持自己的 email 不算重复（排除自身）
	dups, err = repos.Contact.CountDuplicates(owner, ids[0], "c00@example.com", "")
	if err != nil {
		t.Fatal(err)
	}
	if dups != 0 {
		t.Fatalf("own email must not count as duplicate, got %d", dups)
	}

	// 空 email/phone 不参与重复判断
	dups, err = repos.Contact.CountDuplicates(owner, ids[0], "", "")
	if err != nil {
		t.Fatal(err)
	}
	if dups != 0 {
		t.Fatalf("empty fields must not count as duplicate, got %d", dups)
	}

	// 归属过滤的删除
	affected, err := repos.Contact.DeleteScoped(ids[0], owner+999)
	if err != nil {
		t.Fatal(err)
	}
	if affected != 0 {
		t.Fatal("deleting with a foreign user id must not touch rows")
	}

	affected, err = repos.Contact.DeleteScoped(ids[0], owner)
	if err != nil {
		t.Fatal(err)
	}
	if affected != 1 {
		t.Fatalf("want 1 row deleted, got %d", affected)
	}
}
