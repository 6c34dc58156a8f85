// Package instrid is the closed catalogue of instruction identities the
// decoder's lookup table and the trace/disassembly subsystem key off of.
// It names every supported opcode but performs no decoding itself; it is
// a pure enumeration, the Go rendering of InstId.hpp's enum class.
package instrid

// ID identifies one supported RISC-V instruction form.
type ID int

// Illegal is the distinguished zero value: no valid instruction decodes
// to it, so an ID left unset by mistake is visibly wrong rather than
// silently aliasing a real opcode.
const (
	Illegal ID = iota

	// Base.
	Lui
	Auipc
	Jal
	Jalr
	Beq
	Bne
	Blt
	Bge
	Bltu
	Bgeu
	Lb
	Lh
	Lw
	Lbu
	Lhu
	Sb
	Sh
	Sw
	Addi
	Slti
	Sltiu
	Xori
	Ori
	Andi
	Slli
	Srli
	Srai
	Add
	Sub
	Sll
	Slt
	Sltu
	Xor
	Srl
	Sra
	Or
	And
	Fence
	Fencei
	Ecall
	Ebreak

	// CSR
	Csrrw
	Csrrs
	Csrrc
	Csrrwi
	Csrrsi
	Csrrci

	// rv64i
	Lwu
	Ld
	Sd
	Addiw
	Slliw
	Srliw
	Sraiw
	Addw
	Subw
	Sllw
	Srlw
	Sraw

	// Mul/div
	Mul
	Mulh
	Mulhsu
	Mulhu
	Div
	Divu
	Rem
	Remu

	// 64-bit mul/div
	Mulw
	Divw
	Divuw
	Remw
	Remuw

	// Atomic
	LrW
	ScW
	AmoswapW
	AmoaddW
	AmoxorW
	AmoandW
	AmoorW
	AmominW
	AmomaxW
	AmominuW
	AmomaxuW

	// 64-bit atomic
	LrD
	ScD
	AmoswapD
	AmoaddD
	AmoxorD
	AmoandD
	AmoorD
	AmominD
	AmomaxD
	AmominuD
	AmomaxuD

	// rv32f
	Flw
	Fsw
	FmaddS
	FmsubS
	FnmsubS
	FnmaddS
	FaddS
	FsubS
	FmulS
	FdivS
	FsqrtS
	FsgnjS
	FsgnjnS
	FsgnjxS
	FminS
	FmaxS
	FcvtWS
	FcvtWuS
	FmvXW
	FeqS
	FltS
	FleS
	FclassS
	FcvtSW
	FcvtSWu
	FmvWX

	// rv64f
	FcvtLS
	FcvtLuS
	FcvtSL
	FcvtSLu

	// rv32d
	Fld
	Fsd
	FmaddD
	FmsubD
	FnmsubD
	FnmaddD
	FaddD
	FsubD
	FmulD
	FdivD
	FsqrtD
	FsgnjD
	FsgnjnD
	FsgnjxD
	FminD
	FmaxD
	FcvtSD
	FcvtDS
	FeqD
	FltD
	FleD
	FclassD
	FcvtWD
	FcvtWuD
	FcvtDW
	FcvtDWu

	// rv64d
	FcvtLD
	FcvtLuD
	FmvXD
	FcvtDL
	FcvtDLu
	FmvDX

	// Privileged
	Mret
	Uret
	Sret
	Wfi

	// Supervisor
	SfenceVma

	// Compressed insts
	CAddi4spn
	CFld
	CLq
	CLw
	CFlw
	CLd
	CFsd
	CSq
	CSw
	CFsw
	CSd
	CAddi
	CJal
	CLi
	CAddi16sp
	CLui
	CSrli
	CSrli64
	CSrai
	CSrai64
	CAndi
	CSub
	CXor
	COr
	CAnd
	CSubw
	CAddw
	CJ
	CBeqz
	CBnez
	CSlli
	CSlli64
	CFldsp
	CLwsp
	CFlwsp
	CLdsp
	CJr
	CMv
	CEbreak
	CJalr
	CAdd
	CFsdsp
	CSwsp
	CFswsp
	CAddiw
	CSdsp

	// zbb
	Clz
	Ctz
	Pcnt
	Andn
	Orn
	Xnor
	Slo
	Sro
	Sloi
	Sroi
	Min
	Max
	Minu
	Maxu
	Rol
	Ror
	Rori
	Rev8
	Rev
	Pack
	Addwu
	Subwu
	Addiwu
	SextB
	SextH
	AdduW
	SubuW
	SlliuW
	Packh
	Packu
	Packw
	Packuw
	Grev
	Grevi
	Gorc
	Gorci
	Shfl
	Shfli
	Unshfl
	Unshfli
	Sbset
	Sbclr
	Sbinv
	Sbext
	Sbseti
	Sbclri
	Sbinvi
	Sbexti

	// zbe
	Bdep
	Bext

	// zbf
	Bfp

	// zbc
	Clmul
	Clmulh
	Clmulr

	// zba
	Sh1add
	Sh2add
	Sh3add
	Sh1adduW
	Sh2adduW
	Sh3adduW

	// zbr
	Crc32B
	Crc32H
	Crc32W
	Crc32D
	Crc32cB
	Crc32cH
	Crc32cW
	Crc32cD

	// zbm
	Bmator
	Bmatxor
	Bmatflip

	// zbt
	Cmov
	Cmix
	Fsl
	Fsr
	Fsri

	// vector
	VaddVv
	VaddVx
	VaddVi
	VsubVv
	VsubVx
	VrsubVx
	VrsubVi
	VminuVv
	VminuVx
	VminVv
	VminVx
	VmaxuVv
	VmaxuVx
	VmaxVv
	VmaxVx
	VandVv
	VandVx
	VandVi
	VorVv
	VorVx
	VorVi
	VxorVv
	VxorVx
	VxorVi
	VrgatherVv
	VrgatherVx
	VrgatherVi
)

// MaxID is the sentinel equal to the last enumerator; decoder tables sized
// [0, MaxID] can index directly by ID.
const MaxID = VrgatherVi

var names = [MaxID + 1]string{
		"illegal",
		"lui",
		"auipc",
		"jal",
		"jalr",
		"beq",
		"bne",
		"blt",
		"bge",
		"bltu",
		"bgeu",
		"lb",
		"lh",
		"lw",
		"lbu",
		"lhu",
		"sb",
		"sh",
		"sw",
		"addi",
		"slti",
		"sltiu",
		"xori",
		"ori",
		"andi",
		"slli",
		"srli",
		"srai",
		"add",
		"sub",
		"sll",
		"slt",
		"sltu",
		"xor",
		"srl",
		"sra",
		"or",
		"and",
		"fence",
		"fencei",
		"ecall",
		"ebreak",
		"csrrw",
		"csrrs",
		"csrrc",
		"csrrwi",
		"csrrsi",
		"csrrci",
		"lwu",
		"ld",
		"sd",
		"addiw",
		"slliw",
		"srliw",
		"sraiw",
		"addw",
		"subw",
		"sllw",
		"srlw",
		"sraw",
		"mul",
		"mulh",
		"mulhsu",
		"mulhu",
		"div",
		"divu",
		"rem",
		"remu",
		"mulw",
		"divw",
		"divuw",
		"remw",
		"remuw",
		"lr_w",
		"sc_w",
		"amoswap_w",
		"amoadd_w",
		"amoxor_w",
		"amoand_w",
		"amoor_w",
		"amomin_w",
		"amomax_w",
		"amominu_w",
		"amomaxu_w",
		"lr_d",
		"sc_d",
		"amoswap_d",
		"amoadd_d",
		"amoxor_d",
		"amoand_d",
		"amoor_d",
		"amomin_d",
		"amomax_d",
		"amominu_d",
		"amomaxu_d",
		"flw",
		"fsw",
		"fmadd_s",
		"fmsub_s",
		"fnmsub_s",
		"fnmadd_s",
		"fadd_s",
		"fsub_s",
		"fmul_s",
		"fdiv_s",
		"fsqrt_s",
		"fsgnj_s",
		"fsgnjn_s",
		"fsgnjx_s",
		"fmin_s",
		"fmax_s",
		"fcvt_w_s",
		"fcvt_wu_s",
		"fmv_x_w",
		"feq_s",
		"flt_s",
		"fle_s",
		"fclass_s",
		"fcvt_s_w",
		"fcvt_s_wu",
		"fmv_w_x",
		"fcvt_l_s",
		"fcvt_lu_s",
		"fcvt_s_l",
		"fcvt_s_lu",
		"fld",
		"fsd",
		"fmadd_d",
		"fmsub_d",
		"fnmsub_d",
		"fnmadd_d",
		"fadd_d",
		"fsub_d",
		"fmul_d",
		"fdiv_d",
		"fsqrt_d",
		"fsgnj_d",
		"fsgnjn_d",
		"fsgnjx_d",
		"fmin_d",
		"fmax_d",
		"fcvt_s_d",
		"fcvt_d_s",
		"feq_d",
		"flt_d",
		"fle_d",
		"fclass_d",
		"fcvt_w_d",
		"fcvt_wu_d",
		"fcvt_d_w",
		"fcvt_d_wu",
		"fcvt_l_d",
		"fcvt_lu_d",
		"fmv_x_d",
		"fcvt_d_l",
		"fcvt_d_lu",
		"fmv_d_x",
		"mret",
		"uret",
		"sret",
		"wfi",
		"sfence_vma",
		"c_addi4spn",
		"c_fld",
		"c_lq",
		"c_lw",
		"c_flw",
		"c_ld",
		"c_fsd",
		"c_sq",
		"c_sw",
		"c_fsw",
		"c_sd",
		"c_addi",
		"c_jal",
		"c_li",
		"c_addi16sp",
		"c_lui",
		"c_srli",
		"c_srli64",
		"c_srai",
		"c_srai64",
		"c_andi",
		"c_sub",
		"c_xor",
		"c_or",
		"c_and",
		"c_subw",
		"c_addw",
		"c_j",
		"c_beqz",
		"c_bnez",
		"c_slli",
		"c_slli64",
		"c_fldsp",
		"c_lwsp",
		"c_flwsp",
		"c_ldsp",
		"c_jr",
		"c_mv",
		"c_ebreak",
		"c_jalr",
		"c_add",
		"c_fsdsp",
		"c_swsp",
		"c_fswsp",
		"c_addiw",
		"c_sdsp",
		"clz",
		"ctz",
		"pcnt",
		"andn",
		"orn",
		"xnor",
		"slo",
		"sro",
		"sloi",
		"sroi",
		"min",
		"max",
		"minu",
		"maxu",
		"rol",
		"ror",
		"rori",
		"rev8",
		"rev",
		"pack",
		"addwu",
		"subwu",
		"addiwu",
		"sext_b",
		"sext_h",
		"addu_w",
		"subu_w",
		"slliu_w",
		"packh",
		"packu",
		"packw",
		"packuw",
		"grev",
		"grevi",
		"gorc",
		"gorci",
		"shfl",
		"shfli",
		"unshfl",
		"unshfli",
		"sbset",
		"sbclr",
		"sbinv",
		"sbext",
		"sbseti",
		"sbclri",
		"sbinvi",
		"sbexti",
		"bdep",
		"bext",
		"bfp",
		"clmul",
		"clmulh",
		"clmulr",
		"sh1add",
		"sh2add",
		"sh3add",
		"sh1addu_w",
		"sh2addu_w",
		"sh3addu_w",
		"crc32_b",
		"crc32_h",
		"crc32_w",
		"crc32_d",
		"crc32c_b",
		"crc32c_h",
		"crc32c_w",
		"crc32c_d",
		"bmator",
		"bmatxor",
		"bmatflip",
		"cmov",
		"cmix",
		"fsl",
		"fsr",
		"fsri",
		"vadd_vv",
		"vadd_vx",
		"vadd_vi",
		"vsub_vv",
		"vsub_vx",
		"vrsub_vx",
		"vrsub_vi",
		"vminu_vv",
		"vminu_vx",
		"vmin_vv",
		"vmin_vx",
		"vmaxu_vv",
		"vmaxu_vx",
		"vmax_vv",
		"vmax_vx",
		"vand_vv",
		"vand_vx",
		"vand_vi",
		"vor_vv",
		"vor_vx",
		"vor_vi",
		"vxor_vv",
		"vxor_vx",
		"vxor_vi",
		"vrgather_vv",
		"vrgather_vx",
		"vrgather_vi",
}

// String returns the lower-snake-case mnemonic used in trace text, e.g.
// "amoadd_w". Out-of-range values return "illegal".
func (id ID) String() string {
	if id < 0 || int(id) > int(MaxID) {
		return "illegal"
	}
	return names[id]
}
