package service

import (
	"context"
	"fmt"

	"bankoffice/internal/model"
	"bankoffice/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WalletService struct {
	clientRepo *repository.ClientRepository
	walletRepo *repository.WalletRepository
	transRepo  *repository.TransactionRepository
	recentN    int
}

func NewWalletService(db *gorm.DB, recentN int) *WalletService {
	if recentN <= 0 {
		recentN = 10
	}
	return &WalletService{
		clientRepo: repository.NewClientRepository(db),
		walletRepo: repository.NewWalletRepository(db),
		transRepo:  repository.NewTransactionRepository(db),
		recentN:    recentN,
	}
}

// WalletTotals 钱包汇总
// net_worth = 存款余额 + 可用额度 − 未还贷款 − 有效保单保费
type WalletTotals struct {
	TotalBalance   decimal.Decimal `json:"total_balance"`
	TotalCredit    decimal.Decimal `json:"total_credit"`
	TotalDebt      decimal.Decimal `json:"total_debt"`
	TotalInsurance decimal.Decimal `json:"total_insurance"`
	NetWorth       decimal.Decimal `json:"net_worth"`
}

type WalletView struct {
	Client             *model.Client                    `json:"client"`
	Accounts           []*repository.WalletAccountRow   `json:"accounts"`
	Cards              []*repository.WalletCardRow      `json:"cards"`
	Loans              []*repository.WalletLoanRow      `json:"loans"`
	Insurances         []*repository.WalletInsuranceRow `json:"insurances"`
	RecentTransactions []*repository.TransactionRow     `json:"recent_transactions"`
	Totals             WalletTotals                     `json:"totals"`
}

// calculateTotals 纯函数，从各产品投影里累加汇总
func calculateTotals(
	accounts []*repository.WalletAccountRow,
	cards []*repository.WalletCardRow,
	loans []*repository.WalletLoanRow,
	insurances []*repository.WalletInsuranceRow,
) WalletTotals {
	t := WalletTotals{
		TotalBalance:   decimal.Zero,
		TotalCredit:    decimal.Zero,
		TotalDebt:      decimal.Zero,
		TotalInsurance: decimal.Zero,
	}
	for _, a := range accounts {
		t.TotalBalance = t.TotalBalance.Add(a.CurrentBalance)
	}
	for _, c := range cards {
		t.TotalCredit = t.TotalCredit.Add(c.AvailableCredit)
	}
	for _, l := range loans {
		t.TotalDebt = t.TotalDebt.Add(l.RemainingBalance)
	}
	// 保险汇总取的是有效保单的每期保费，不是已缴金额
	for _, i := range insurances {
		t.TotalInsurance = t.TotalInsurance.Add(i.FeeAmount)
	}
	t.NetWorth = t.TotalBalance.Add(t.TotalCredit).Sub(t.TotalDebt).Sub(t.TotalInsurance)
	return t
}

// Get 拼装客户钱包视图
// 只读投影：每个数字都是现算的，不落任何聚合表
func (s *WalletService) Get(ctx context.Context, clientID int64) (*WalletView, error) {
	row, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.walletRepo.ClientAccounts(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("汇总账户失败: %w", err)
	}
	cards, err := s.walletRepo.ClientCards(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("汇总卡片失败: %w", err)
	}
	loans, err := s.walletRepo.ClientLoans(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("汇总贷款失败: %w", err)
	}
	insurances, err := s.walletRepo.ClientInsurances(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("汇总保单失败: %w", err)
	}
	recent, err := s.transRepo.Recent(ctx, clientID, s.recentN)
	if err != nil {
		return nil, fmt.Errorf("查询最近交易失败: %w", err)
	}

	return &WalletView{
		Client:             &row.Client,
		Accounts:           accounts,
		Cards:              cards,
		Loans:              loans,
		Insurances:         insurances,
		RecentTransactions: recent,
		Totals:             calculateTotals(accounts, cards, loans, insurances),
	}, nil
}
